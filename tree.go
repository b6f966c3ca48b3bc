package edittree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tree is a height-balanced binary tree with rank, holding a text.
//
// A tree created by
//
//	&Tree{}
//
// is a valid object and represents the empty text.
//
// Methods that take or return positions use character (rune) positions.
// Height and size are derived from ranks and balance tags, so both run in
// logarithmic time:
//
//	Operation     |   EditTree      |  String
//	--------------+-----------------+--------
//	Index         |   O(log n)      |   O(1)
//	Split         |   O(log n)      |   O(n)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(log n)      |   O(n)
//	Insert        |   O(log n)      |   O(n)
//	Delete        |   O(log n)      |   O(n)
//
// A tree must not be mutated concurrently; see Guarded.
type Tree struct {
	root      *Node
	rotations int    // single rotations since creation
	version   uint64 // incremented by every mutation
	cfg       Config
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewWithConfig creates an empty tree with a validated configuration.
func NewWithConfig(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree{cfg: cfg}, nil
}

// FromChar creates a tree holding a single character.
func FromChar(c rune) *Tree {
	return &Tree{root: newNode(c)}
}

// FromString creates a tree whose text is s. This is done in O(n), where n is
// the number of characters in s.
func FromString(s string) *Tree {
	b := NewBuilder()
	err := b.AppendString(s)
	assert(err == nil, "FromString: builder refused text")
	return b.Tree()
}

// Config returns a copy of the tree's configuration.
func (t *Tree) Config() Config {
	if t == nil {
		return Config{}
	}
	return t.cfg
}

// Clone creates a copy of t with all new nodes, but with the same shape and
// contents. The rotation count of the copy starts at zero.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return New()
	}
	return &Tree{
		root: copyTree(t.root, nil),
		cfg:  t.cfg,
	}
}

// IsEmpty reports whether the tree holds no characters.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of characters in the tree.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return t.root.size()
}

// Height returns the height of the tree, where -1 means empty and 0 means a
// single node. Height relies on the balance tags and is correct as long as the
// tree's invariants hold; see SlowHeight.
func (t *Tree) Height() int {
	if t == nil {
		return -1
	}
	return t.root.height()
}

// SlowHeight computes the height of the tree by visiting every node. Its
// result does not depend on balance tags.
func (t *Tree) SlowHeight() int {
	if t == nil {
		return -1
	}
	return t.root.slowHeight()
}

// SlowSize counts the nodes of the tree by visiting every node. Its result
// does not depend on ranks.
func (t *Tree) SlowSize() int {
	if t == nil {
		return 0
	}
	return t.root.slowSize()
}

// TotalRotationCount returns the number of rotations done in this tree since
// it was created. A double rotation counts as two.
func (t *Tree) TotalRotationCount() int {
	if t == nil {
		return 0
	}
	return t.rotations
}

// Root returns the root node of the tree, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// RootNode is part of interface DisplayableTree.
func (t *Tree) RootNode() Displayable {
	if t.IsEmpty() {
		return nil
	}
	return t.root
}

// String returns the text of the tree, i.e. the characters of an inorder
// traversal.
func (t *Tree) String() string {
	if t.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(t.Size())
	for n := t.root.leftmost(); n != nil; n = n.successor() {
		sb.WriteRune(n.element)
	}
	return sb.String()
}

// DebugString lists element, rank and balance tag of every node in pre-order.
// For a tree with root b and children a and c it returns
//
//	[b1=, a0=, c0=]
func (t *Tree) DebugString() string {
	if t.IsEmpty() {
		return "[]"
	}
	parts := make([]string, 0, t.Size())
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil {
			return
		}
		parts = append(parts, fmt.Sprintf("%c%d%s", n.element, n.rank, n.balance))
		visit(n.left)
		visit(n.right)
	}
	visit(t.root)
	return "[" + strings.Join(parts, ", ") + "]"
}

// Get returns the character at position pos.
func (t *Tree) Get(pos int) (rune, error) {
	if pos < 0 || pos >= t.Size() {
		return 0, fmt.Errorf("%w: get(%d) with size %d", ErrIndexOutOfBounds, pos, t.Size())
	}
	n := t.root.find(pos)
	if n == nil {
		return 0, fmt.Errorf("%w: no node at position %d", ErrCorruptTree, pos)
	}
	return n.element, nil
}

// GetRange returns the string of length characters starting at position pos.
// It runs in O(log n + length).
func (t *Tree) GetRange(pos, length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("%w: negative length %d", ErrIllegalArguments, length)
	}
	if pos < 0 || pos+length > t.Size() {
		return "", fmt.Errorf("%w: range [%d,%d) with size %d", ErrIndexOutOfBounds,
			pos, pos+length, t.Size())
	}
	if length == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.Grow(length)
	n := t.root.find(pos)
	for i := 0; i < length; i++ {
		if n == nil {
			return "", fmt.Errorf("%w: range ends prematurely", ErrCorruptTree)
		}
		sb.WriteRune(n.element)
		n = n.successor()
	}
	return sb.String(), nil
}

// Find returns the position of the first occurrence of s in the text, or -1
// if s does not occur.
func (t *Tree) Find(s string) int {
	return t.FindFrom(s, 0)
}

// FindFrom returns the position of the first occurrence of s which does not
// start before position pos, or -1 if there is none.
func (t *Tree) FindFrom(s string, pos int) int {
	if pos < 0 {
		pos = 0
	}
	size := t.Size()
	if pos > size {
		return -1
	}
	if s == "" {
		return pos
	}
	text, err := t.GetRange(pos, size-pos)
	if err != nil {
		return -1
	}
	i := strings.Index(text, s)
	if i < 0 {
		return -1
	}
	return pos + utf8.RuneCountInString(text[:i])
}

// modified is called at the end of every mutating operation.
func (t *Tree) modified() {
	t.version++
	if t.cfg.CheckInvariants {
		err := t.Check()
		assert(err == nil, fmt.Sprintf("tree invariants violated: %v", err))
	}
}
