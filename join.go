package edittree

import "fmt"

// subtree is a detached subtree, i.e. its root has no parent, together with
// its height and size.
type subtree struct {
	root   *Node
	height int
	size   int
}

var emptySubtree = subtree{height: -1}

// splitPiece is a node on a split path together with the subtree hanging off
// the path at this node.
type splitPiece struct {
	pivot *Node
	sub   subtree
}

// Split splits the tree right before position pos. The tree keeps the
// characters at positions [0,pos), the characters at [pos,size) are
// returned as a new tree.
//
// Split walks the path from the root to pos once. Every node on the path
// is put aside together with the subtree hanging off the path on the other
// side, and both halves are re-assembled bottom-up by joining these pieces.
// Heights of pieces telescope along the path, making the overall cost
// O(log n).
func (t *Tree) Split(pos int) (*Tree, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	size := t.Size()
	if pos < 0 || pos > size {
		return nil, fmt.Errorf("%w: split at %d with size %d", ErrIndexOutOfBounds, pos, size)
	}
	right := &Tree{cfg: t.cfg}
	if pos == size {
		return right, nil
	}
	if pos == 0 {
		right.root, t.root = t.root, nil
		t.modified()
		right.modified()
		return right, nil
	}
	var lefts, rights []splitPiece
	n, h, s := t.root, t.root.height(), size
	for n != nil {
		lh, rh := n.childHeights(h)
		if pos <= n.rank {
			sub := subtree{root: n.right, height: rh, size: s - n.rank - 1}
			rights = append(rights, splitPiece{pivot: n, sub: sub})
			n, h, s = n.left, lh, n.rank
		} else {
			sub := subtree{root: n.left, height: lh, size: n.rank}
			lefts = append(lefts, splitPiece{pivot: n, sub: sub})
			pos -= n.rank + 1
			n, h, s = n.right, rh, s-n.rank-1
		}
	}
	acc := emptySubtree
	for i := len(lefts) - 1; i >= 0; i-- {
		piece := lefts[i]
		detach(piece.sub.root)
		acc = t.join(piece.sub, piece.pivot, acc)
	}
	t.root = acc.root
	acc = emptySubtree
	for i := len(rights) - 1; i >= 0; i-- {
		piece := rights[i]
		detach(piece.sub.root)
		acc = t.join(acc, piece.pivot, piece.sub)
	}
	right.root = acc.root
	tracer().Debugf("split: %d | %d characters", t.Size(), right.Size())
	t.modified()
	right.modified()
	return right, nil
}

// Concatenate appends the text of other to the text of t, leaving other
// empty. It runs in time proportional to the height of the taller tree.
//
// The first node of other is taken out and serves as a pivot to join both
// trees: the shorter tree is grafted onto the spine of the taller tree at
// matching height, with the pivot on top, and the taller tree is retraced
// upwards from the graft point.
func (t *Tree) Concatenate(other *Tree) error {
	if t == nil || other == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t == other {
		return fmt.Errorf("%w: cannot concatenate a tree to itself", ErrSelfOperation)
	}
	if other.IsEmpty() {
		return nil
	}
	lsize, rsize := t.Size(), other.Size()
	if !t.cfg.hasRoomFor(lsize, rsize) {
		return fmt.Errorf("%w: max size is %d", ErrCapacityExceeded, t.cfg.MaxSize)
	}
	if t.IsEmpty() {
		t.root, other.root = other.root, nil
		t.modified()
		other.modified()
		return nil
	}
	left := subtree{root: t.root, height: t.root.height(), size: lsize}
	pivot := other.root.leftmost()
	rest := t.unlink(pivot)
	right := subtree{root: rest, height: rest.height(), size: rsize - 1}
	other.root = nil
	joined := t.join(left, pivot, right)
	t.root = joined.root
	tracer().Debugf("concatenate: %d + %d characters, height %d", lsize, rsize, joined.height)
	t.modified()
	other.modified()
	return nil
}

// join creates a balanced structure of l, pivot and r, in this order. Both l
// and r must be detached. The cost is O(|height(l)-height(r)| + 1).
func (t *Tree) join(l subtree, pivot *Node, r subtree) subtree {
	pivot.left, pivot.right, pivot.parent = nil, nil, nil
	switch {
	case l.height > r.height+1:
		return t.joinIntoLeft(l, pivot, r)
	case r.height > l.height+1:
		return t.joinIntoRight(l, pivot, r)
	}
	pivot.setLeft(l.root)
	pivot.setRight(r.root)
	pivot.rank = l.size
	switch {
	case l.height > r.height:
		pivot.balance = LeansLeft
	case r.height > l.height:
		pivot.balance = LeansRight
	default:
		pivot.balance = Balanced
	}
	return subtree{root: pivot, height: max(l.height, r.height) + 1, size: l.size + r.size + 1}
}

// joinIntoLeft grafts pivot and the shorter r onto the right spine of l.
func (t *Tree) joinIntoLeft(l subtree, pivot *Node, r subtree) subtree {
	c, hc, sc := l.root, l.height, l.size
	var p *Node
	for hc > r.height+1 {
		_, rh := c.childHeights(hc)
		sc -= c.rank + 1
		p = c
		c, hc = c.right, rh
	}
	// hc is either r.height or r.height+1
	pivot.setLeft(c)
	pivot.setRight(r.root)
	pivot.rank = sc
	if hc > r.height {
		pivot.balance = LeansLeft
	} else {
		pivot.balance = Balanced
	}
	p.setRight(pivot)
	root, grew := t.retraceGrowth(pivot)
	h := l.height
	if grew {
		h++
	}
	return subtree{root: root, height: h, size: l.size + r.size + 1}
}

// joinIntoRight grafts the shorter l and pivot onto the left spine of r.
func (t *Tree) joinIntoRight(l subtree, pivot *Node, r subtree) subtree {
	c, hc := r.root, r.height
	var p *Node
	for hc > l.height+1 {
		lh, _ := c.childHeights(hc)
		c.rank += l.size + 1 // l and pivot will end up left of c
		p = c
		c, hc = c.left, lh
	}
	pivot.setLeft(l.root)
	pivot.setRight(c)
	pivot.rank = l.size
	if hc > l.height {
		pivot.balance = LeansRight
	} else {
		pivot.balance = Balanced
	}
	p.setLeft(pivot)
	root, grew := t.retraceGrowth(pivot)
	h := r.height
	if grew {
		h++
	}
	return subtree{root: root, height: h, size: l.size + r.size + 1}
}

func detach(n *Node) {
	if n != nil {
		n.parent = nil
	}
}
