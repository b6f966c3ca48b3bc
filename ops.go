package edittree

import (
	"fmt"
	"unicode/utf8"
)

// Append adds character c to the end of the text.
func (t *Tree) Append(c rune) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if !t.cfg.hasRoomFor(t.Size(), 1) {
		return fmt.Errorf("%w: max size is %d", ErrCapacityExceeded, t.cfg.MaxSize)
	}
	leaf := newNode(c)
	if t.root == nil {
		t.root = leaf
		t.modified()
		return nil
	}
	t.root.rightmost().setRight(leaf)
	t.root, _ = t.retraceGrowth(leaf)
	t.modified()
	return nil
}

// Insert adds character c at position pos, shifting the characters at
// positions pos and above by one. pos may equal the size of the tree, which
// appends c.
func (t *Tree) Insert(c rune, pos int) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	size := t.Size()
	if pos < 0 || pos > size {
		return fmt.Errorf("%w: insert at %d with size %d", ErrIndexOutOfBounds, pos, size)
	}
	if !t.cfg.hasRoomFor(size, 1) {
		return fmt.Errorf("%w: max size is %d", ErrCapacityExceeded, t.cfg.MaxSize)
	}
	leaf := newNode(c)
	if t.root == nil {
		t.root = leaf
		t.modified()
		return nil
	}
	n := t.root
	for {
		if pos <= n.rank {
			n.rank++ // the new node goes into n's left subtree
			if n.left == nil {
				n.setLeft(leaf)
				break
			}
			n = n.left
		} else {
			pos -= n.rank + 1
			if n.right == nil {
				n.setRight(leaf)
				break
			}
			n = n.right
		}
	}
	t.root, _ = t.retraceGrowth(leaf)
	t.modified()
	return nil
}

// InsertString inserts the characters of s at position pos. This runs in
// O(m + log n) for a string of m characters, as the string is built into a
// tree of its own and then spliced in.
func (t *Tree) InsertString(s string, pos int) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	size := t.Size()
	if pos < 0 || pos > size {
		return fmt.Errorf("%w: insert at %d with size %d", ErrIndexOutOfBounds, pos, size)
	}
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	m := utf8.RuneCountInString(s)
	if m == 0 {
		return nil
	}
	if !t.cfg.hasRoomFor(size, m) {
		return fmt.Errorf("%w: max size is %d", ErrCapacityExceeded, t.cfg.MaxSize)
	}
	tail, err := t.Split(pos)
	if err != nil {
		return err
	}
	if err = t.Concatenate(FromString(s)); err != nil {
		return err
	}
	return t.Concatenate(tail)
}

// Delete removes the character at position pos and returns it.
//
// A node with two children is never removed itself. It takes over the
// character of its inorder successor, which is removed instead.
func (t *Tree) Delete(pos int) (rune, error) {
	if t.IsEmpty() {
		return 0, fmt.Errorf("%w: delete(%d) from empty tree", ErrIndexOutOfBounds, pos)
	}
	if pos < 0 || pos >= t.Size() {
		return 0, fmt.Errorf("%w: delete(%d) with size %d", ErrIndexOutOfBounds, pos, t.Size())
	}
	target := t.root.find(pos)
	if target == nil {
		return 0, fmt.Errorf("%w: no node at position %d", ErrCorruptTree, pos)
	}
	c := target.element
	if target.left != nil && target.right != nil {
		succ := target.right.leftmost()
		target.element = succ.element
		target = succ
	}
	t.root = t.unlink(target)
	t.modified()
	return c, nil
}

// DeleteRange removes length characters starting at position start and
// returns them as a new tree.
func (t *Tree) DeleteRange(start, length int) (*Tree, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrIllegalArguments, length)
	}
	if start < 0 || start+length > t.Size() {
		return nil, fmt.Errorf("%w: delete range [%d,%d) with size %d", ErrIndexOutOfBounds,
			start, start+length, t.Size())
	}
	cut, err := t.Split(start)
	if err != nil {
		return nil, err
	}
	tail, err := cut.Split(length)
	if err != nil {
		return nil, err
	}
	if err = t.Concatenate(tail); err != nil {
		return nil, err
	}
	return cut, nil
}

// unlink removes node n, which must not have two children, from its
// structure. Ranks of n's ancestors are adjusted and the structure is
// rebalanced. unlink returns the root of the structure, or nil if n was its
// only node. The tree's root reference is not touched.
func (t *Tree) unlink(n *Node) *Node {
	assert(n.left == nil || n.right == nil, "unlink: node has two children")
	for c, p := n, n.parent; p != nil; c, p = p, p.parent {
		if p.left == c {
			p.rank--
		}
	}
	child := n.left
	if child == nil {
		child = n.right
	}
	p := n.parent
	n.left, n.right, n.parent = nil, nil, nil
	n.rank, n.balance = 0, Balanced
	if p == nil {
		if child != nil {
			child.parent = nil
		}
		return child
	}
	fromLeft := p.left == n
	p.replaceChild(n, child)
	return t.retraceShrink(p, fromLeft)
}
