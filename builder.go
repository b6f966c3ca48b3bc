package edittree

import (
	"unicode/utf8"
)

// Builder incrementally stages text and finalizes it into a Tree.
//
// Builder collects characters and materializes the tree only when Tree() is
// called. The tree is then built bottom-up in one pass, in time linear to
// the number of characters, which is considerably faster than inserting
// characters one by one.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended characters in reverse logical order.
	front []rune
	// back keeps appended characters in logical order.
	back []rune

	done bool
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Tree returns the tree built from all staged text.
//
// It is illegal to continue adding text after Tree has been called, but
// Tree may be called multiple times. Each call returns an independent tree.
func (b *Builder) Tree() *Tree {
	if b == nil {
		return New()
	}
	b.done = true
	tree := b.buildTree()
	if tree.IsEmpty() {
		tracer().Debugf("tree builder: tree is empty")
	}
	return tree
}

// Reset drops the staged text and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
}

// AppendString appends UTF-8 text to the staged text.
func (b *Builder) AppendString(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	if err := b.checkOpen(); err != nil {
		return err
	}
	for _, r := range text {
		b.back = append(b.back, r)
	}
	return nil
}

// AppendBytes appends UTF-8 bytes to the staged text.
func (b *Builder) AppendBytes(text []byte) error {
	if !utf8.Valid(text) {
		return ErrInvalidUTF8
	}
	return b.AppendString(string(text))
}

// AppendRune appends a single character to the staged text.
func (b *Builder) AppendRune(r rune) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.back = append(b.back, r)
	return nil
}

// PrependString prepends UTF-8 text to the staged text.
func (b *Builder) PrependString(text string) error {
	if !utf8.ValidString(text) {
		return ErrInvalidUTF8
	}
	if err := b.checkOpen(); err != nil {
		return err
	}
	runes := []rune(text)
	// front is stored in reverse logical order.
	for i := len(runes) - 1; i >= 0; i-- {
		b.front = append(b.front, runes[i])
	}
	return nil
}

// Len returns the number of characters staged so far.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

func (b *Builder) checkOpen() error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	return nil
}

func (b *Builder) buildTree() *Tree {
	text := b.orderedRunes()
	root, _ := buildBalanced(text, nil)
	return &Tree{root: root}
}

func (b *Builder) orderedRunes() []rune {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]rune, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}

// buildBalanced creates a tree for text with the middle character at the
// root, recursively. Sibling subtrees differ in size by at most one, hence
// in height by at most one. It returns the root and the height of the tree.
func buildBalanced(text []rune, parent *Node) (*Node, int) {
	if len(text) == 0 {
		return nil, -1
	}
	mid := len(text) / 2
	n := &Node{element: text[mid], rank: mid, parent: parent}
	var lh, rh int
	n.left, lh = buildBalanced(text[:mid], n)
	n.right, rh = buildBalanced(text[mid+1:], n)
	switch {
	case lh > rh:
		n.balance = LeansLeft
	case rh > lh:
		n.balance = LeansRight
	}
	return n, max(lh, rh) + 1
}
