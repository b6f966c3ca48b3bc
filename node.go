package edittree

import "strconv"

// Balance is a node's balance tag. It tells which of a node's subtrees, if
// any, is one level taller than the other.
type Balance int8

// Balance tags. Balanced is the zero value.
const (
	Balanced Balance = iota
	LeansLeft
	LeansRight
)

func (b Balance) String() string {
	switch b {
	case LeansLeft:
		return "/"
	case LeansRight:
		return "\\"
	case Balanced:
		return "="
	}
	return "?"
}

// leaning returns the balance tag for a node whose left (or right) side is taller.
func leaning(left bool) Balance {
	if left {
		return LeansLeft
	}
	return LeansRight
}

// Node is a node of an edit tree, holding a single character.
//
// Nodes are owned by their tree. Clients may inspect them through the read-only
// accessors, but never modify them. An absent child is represented by nil, and
// all accessors are safe to call on a nil node.
type Node struct {
	element             rune
	rank                int // number of nodes in the left subtree
	balance             Balance
	left, right, parent *Node
}

func newNode(c rune) *Node {
	return &Node{element: c}
}

// Element returns the character held by n.
func (n *Node) Element() rune {
	if n == nil {
		return 0
	}
	return n.element
}

// Rank returns the number of nodes in the left subtree of n.
func (n *Node) Rank() int {
	if n == nil {
		return 0
	}
	return n.rank
}

// Balance returns the balance tag of n.
func (n *Node) Balance() Balance {
	if n == nil {
		return Balanced
	}
	return n.balance
}

// LeftChild returns the left child of n, or nil.
func (n *Node) LeftChild() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// RightChild returns the right child of n, or nil.
func (n *Node) RightChild() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// ParentNode returns the parent of n, or nil for a root node.
func (n *Node) ParentNode() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// --- Subtree helpers -------------------------------------------------------

// size counts the nodes of the subtree rooted at n by following the right
// spine and summing up ranks.
func (n *Node) size() int {
	s := 0
	for ; n != nil; n = n.right {
		s += n.rank + 1
	}
	return s
}

// height follows the balance tags down the taller side. It is only correct
// if the balance tags of the subtree are accurate. An empty subtree has
// height -1.
func (n *Node) height() int {
	h := -1
	for n != nil {
		h++
		if n.balance == LeansRight {
			n = n.right
		} else {
			n = n.left
		}
	}
	return h
}

// slowHeight computes the height of the subtree recursively, independent of
// balance tags.
func (n *Node) slowHeight() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.slowHeight(), n.right.slowHeight())
}

func (n *Node) slowSize() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.slowSize() + n.right.slowSize()
}

// childHeights derives the heights of n's children from n's height h and
// its balance tag.
func (n *Node) childHeights(h int) (lh, rh int) {
	switch n.balance {
	case LeansLeft:
		return h - 1, h - 2
	case LeansRight:
		return h - 2, h - 1
	}
	return h - 1, h - 1
}

// leftmost returns the first node in inorder of the subtree rooted at n.
func (n *Node) leftmost() *Node {
	for n != nil && n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node) rightmost() *Node {
	for n != nil && n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the inorder successor of n, or nil.
func (n *Node) successor() *Node {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the inorder predecessor of n, or nil.
func (n *Node) predecessor() *Node {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// find locates the node at position pos within the subtree rooted at n.
func (n *Node) find(pos int) *Node {
	for n != nil {
		switch {
		case pos == n.rank:
			return n
		case pos < n.rank:
			n = n.left
		default:
			pos -= n.rank + 1
			n = n.right
		}
	}
	return nil
}

// copyTree creates a deep copy of the subtree rooted at n, attached to parent.
func copyTree(n *Node, parent *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		element: n.element,
		rank:    n.rank,
		balance: n.balance,
		parent:  parent,
	}
	c.left = copyTree(n.left, c)
	c.right = copyTree(n.right, c)
	return c
}

// setLeft and setRight attach a child (which may be nil) and fix its parent link.
func (n *Node) setLeft(c *Node) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *Node) setRight(c *Node) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// replaceChild makes c take the place of n in n's parent.
func (n *Node) replaceChild(old, c *Node) {
	if n.left == old {
		n.left = c
	} else {
		assert(n.right == old, "replaceChild: node is not a child of its parent")
		n.right = c
	}
	if c != nil {
		c.parent = n
	}
}

// root climbs parent links up to the root of n's tree.
func (n *Node) root() *Node {
	for n != nil && n.parent != nil {
		n = n.parent
	}
	return n
}

// --- Displayable -----------------------------------------------------------

// HasLeft is part of interface Displayable.
func (n *Node) HasLeft() bool {
	return n != nil && n.left != nil
}

// Left is part of interface Displayable. It returns nil if n has no left child.
func (n *Node) Left() Displayable {
	if !n.HasLeft() {
		return nil
	}
	return n.left
}

// HasRight is part of interface Displayable.
func (n *Node) HasRight() bool {
	return n != nil && n.right != nil
}

// Right is part of interface Displayable. It returns nil if n has no right child.
func (n *Node) Right() Displayable {
	if !n.HasRight() {
		return nil
	}
	return n.right
}

// HasParent is part of interface Displayable.
func (n *Node) HasParent() bool {
	return n != nil && n.parent != nil
}

// Parent is part of interface Displayable. It returns nil for a root node.
func (n *Node) Parent() Displayable {
	if !n.HasParent() {
		return nil
	}
	return n.parent
}

// RankString is part of interface Displayable.
func (n *Node) RankString() string {
	return strconv.Itoa(n.Rank())
}

// BalanceString is part of interface Displayable.
func (n *Node) BalanceString() string {
	return n.Balance().String()
}

// ElementString is part of interface Displayable.
func (n *Node) ElementString() string {
	if n == nil {
		return ""
	}
	return string(n.element)
}
