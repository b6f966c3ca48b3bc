package edittree

// Rotations restructure two nodes while keeping their inorder sequence:
//
//	     a              b
//	    / \            / \
//	   b   z   <=>    x   a
//	  / \                / \
//	 x   y              y   z
//
// Rotations do not update the tree's root reference. The retrace functions
// return the (possibly new) root of the subtree they worked on, and callers
// install it.

// rotateRight lifts the left child b of a into a's place.
func (t *Tree) rotateRight(a *Node) *Node {
	b := a.left
	a.setLeft(b.right)
	if p := a.parent; p != nil {
		p.replaceChild(a, b)
	} else {
		b.parent = nil
	}
	b.setRight(a)
	a.rank -= b.rank + 1
	t.rotated("right", a, b)
	return b
}

// rotateLeft lifts the right child b of a into a's place.
func (t *Tree) rotateLeft(a *Node) *Node {
	b := a.right
	a.setRight(b.left)
	if p := a.parent; p != nil {
		p.replaceChild(a, b)
	} else {
		b.parent = nil
	}
	b.setLeft(a)
	b.rank += a.rank + 1
	t.rotated("left", a, b)
	return b
}

func (t *Tree) rotated(dir string, a, b *Node) {
	t.rotations++
	if t.cfg.TraceRotations {
		tracer().Debugf("rotate %s: '%c' moves above '%c'", dir, b.element, a.element)
	}
}

// rebalance restores the height invariant at a, whose left (or right)
// subtree is two levels taller than the other one. It returns the new top of
// the subtree and whether the subtree is now one level lower than it was
// while unbalanced.
func (t *Tree) rebalance(a *Node, leftHeavy bool) (*Node, bool) {
	if leftHeavy {
		return t.rebalanceLeftHeavy(a)
	}
	return t.rebalanceRightHeavy(a)
}

func (t *Tree) rebalanceLeftHeavy(a *Node) (*Node, bool) {
	b := a.left
	switch b.balance {
	case LeansLeft:
		top := t.rotateRight(a)
		a.balance, b.balance = Balanced, Balanced
		return top, true
	case Balanced: // happens after deletions and joins only
		top := t.rotateRight(a)
		a.balance, b.balance = LeansLeft, LeansRight
		return top, false
	}
	c := b.right
	t.rotateLeft(b)
	top := t.rotateRight(a)
	a.balance, b.balance = doubleRotationBalances(c.balance, LeansRight, LeansLeft)
	c.balance = Balanced
	return top, true
}

func (t *Tree) rebalanceRightHeavy(a *Node) (*Node, bool) {
	b := a.right
	switch b.balance {
	case LeansRight:
		top := t.rotateLeft(a)
		a.balance, b.balance = Balanced, Balanced
		return top, true
	case Balanced:
		top := t.rotateLeft(a)
		a.balance, b.balance = LeansRight, LeansLeft
		return top, false
	}
	c := b.left
	t.rotateRight(b)
	top := t.rotateLeft(a)
	a.balance, b.balance = doubleRotationBalances(c.balance, LeansLeft, LeansRight)
	c.balance = Balanced
	return top, true
}

// doubleRotationBalances computes the tags of the outer nodes a and b after a
// double rotation lifted their grandchild c. towardA is the lean pointing to
// the side where a ends up, awayA the opposite one.
//
// For a left-heavy a (b = a.left, c = b.right), towardA is LeansRight and
// awayA is LeansLeft:
//
//	c leans left:  a leans right, b balanced
//	c balanced:    both balanced
//	c leans right: a balanced, b leans left
func doubleRotationBalances(c, towardA, awayA Balance) (Balance, Balance) {
	switch c {
	case awayA:
		return towardA, Balanced
	case towardA:
		return Balanced, awayA
	}
	return Balanced, Balanced
}

// retraceGrowth walks upwards from n, whose subtree just grew by one level,
// and updates balance tags until the growth is absorbed. It returns the root
// of the whole structure and whether the root's height grew.
func (t *Tree) retraceGrowth(n *Node) (*Node, bool) {
	for n.parent != nil {
		p := n.parent
		fromLeft := p.left == n
		switch p.balance {
		case Balanced:
			p.balance = leaning(fromLeft)
			n = p
		case leaning(!fromLeft):
			p.balance = Balanced
			return p.root(), false
		default:
			top, lowered := t.rebalance(p, fromLeft)
			if lowered {
				return top.root(), false
			}
			n = top
		}
	}
	return n, true
}

// retraceShrink walks upwards from p, whose left (or right) subtree just
// lost one level of height, and updates balance tags until the height change
// is absorbed. It returns the root of the whole structure.
func (t *Tree) retraceShrink(p *Node, fromLeft bool) *Node {
	for {
		var top *Node
		switch p.balance {
		case Balanced:
			p.balance = leaning(!fromLeft)
			return p.root()
		case leaning(fromLeft):
			p.balance = Balanced
			top = p
		default:
			var lowered bool
			top, lowered = t.rebalance(p, !fromLeft)
			if !lowered {
				return top.root()
			}
		}
		if top.parent == nil {
			return top
		}
		fromLeft = top.parent.left == top
		p = top.parent
	}
}
