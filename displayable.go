package edittree

// Displayable is the read-only view of a tree node used by visualizers.
// Visualizers must not rely on anything beyond this capability set.
//
// Left, Right and Parent return nil if the respective predicate is false.
type Displayable interface {
	HasLeft() bool
	Left() Displayable
	HasRight() bool
	Right() Displayable
	HasParent() bool
	Parent() Displayable
	RankString() string    // rank of the node
	BalanceString() string // one of "/", "=", "\"
	ElementString() string // the node's character
}

// DisplayableTree is the read-only view of a tree used by visualizers.
type DisplayableTree interface {
	RootNode() Displayable // nil for an empty tree
	Size() int
	Height() int
}

var _ Displayable = (*Node)(nil)
var _ DisplayableTree = (*Tree)(nil)
