package edittree

import "fmt"

// Cursor navigates a tree character by character.
//
// A cursor sits between two characters; position 0 is before the first
// character and position Size() is after the last one. The cursor is bound
// to the state of the tree at the time it has been created or last seeked.
// Once the tree is modified the cursor is stale: Next and Prev report
// ok=false, and Seek returns ErrStaleCursor.
//
// Moving a cursor by one character follows parent and child links, which
// costs O(1) amortized.
type Cursor struct {
	tree    *Tree
	version uint64
	pos     int
	at      *Node // node at pos, nil at end of text
}

// NewCursor creates a cursor at the start of the text.
func (t *Tree) NewCursor() *Cursor {
	if t == nil {
		t = New()
	}
	return &Cursor{
		tree:    t,
		version: t.version,
		at:      t.root.leftmost(),
	}
}

// Pos returns the current cursor position.
func (c *Cursor) Pos() int {
	if c == nil {
		return 0
	}
	return c.pos
}

// Stale reports whether the cursor's tree has been modified after the cursor
// was positioned.
func (c *Cursor) Stale() bool {
	return c == nil || c.version != c.tree.version
}

// Seek moves the cursor to position pos in O(log n).
func (c *Cursor) Seek(pos int) error {
	if c == nil {
		return ErrIllegalArguments
	}
	if c.Stale() {
		return ErrStaleCursor
	}
	size := c.tree.Size()
	if pos < 0 || pos > size {
		return fmt.Errorf("%w: seek to %d with size %d", ErrIndexOutOfBounds, pos, size)
	}
	c.pos = pos
	c.at = c.tree.root.find(pos)
	return nil
}

// Next returns the character at the current cursor position and advances
// by one character.
//
// If the cursor is at the end of the text or stale, ok is false.
func (c *Cursor) Next() (r rune, ok bool) {
	if c.Stale() || c.at == nil {
		return 0, false
	}
	r = c.at.element
	c.at = c.at.successor()
	c.pos++
	return r, true
}

// Prev returns the character before the current cursor position and moves
// back by one character.
//
// If the cursor is at the start of the text or stale, ok is false.
func (c *Cursor) Prev() (r rune, ok bool) {
	if c.Stale() || c.pos == 0 {
		return 0, false
	}
	var prev *Node
	if c.at == nil {
		prev = c.tree.root.rightmost()
	} else {
		prev = c.at.predecessor()
	}
	if prev == nil {
		return 0, false
	}
	c.at = prev
	c.pos--
	return prev.element, true
}
