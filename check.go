package edittree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - parent links are consistent with child links,
//   - the rank of every node equals the size of its left subtree,
//   - the heights of sibling subtrees differ by at most one,
//   - every balance tag reflects the heights of the node's subtrees.
//
// Check visits every node and is intended for tests and debugging.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorruptTree)
	}
	_, _, err := checkNode(t.root, 0)
	return err
}

// checkNode checks the subtree rooted at n, whose first character is at
// position offset.
func checkNode(n *Node, offset int) (size int, height int, err error) {
	if n == nil {
		return 0, -1, nil
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link left of '%c'", ErrCorruptTree, n.element)
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, fmt.Errorf("%w: broken parent link right of '%c'", ErrCorruptTree, n.element)
	}
	lsize, lh, err := checkNode(n.left, offset)
	if err != nil {
		return 0, 0, err
	}
	rsize, rh, err := checkNode(n.right, offset+lsize+1)
	if err != nil {
		return 0, 0, err
	}
	if n.rank != lsize {
		return 0, 0, fmt.Errorf("%w: rank of '%c' at %d is %d, left subtree has %d nodes",
			ErrCorruptTree, n.element, offset+lsize, n.rank, lsize)
	}
	var b Balance
	switch lh - rh {
	case 0:
		b = Balanced
	case 1:
		b = LeansLeft
	case -1:
		b = LeansRight
	default:
		return 0, 0, fmt.Errorf("%w: node '%c' at %d out of balance, heights %d and %d",
			ErrCorruptTree, n.element, offset+lsize, lh, rh)
	}
	if n.balance != b {
		return 0, 0, fmt.Errorf("%w: node '%c' tagged %s, should be %s",
			ErrCorruptTree, n.element, n.balance, b)
	}
	return lsize + rsize + 1, max(lh, rh) + 1, nil
}
