package edittree

import "sync"

// Guarded serializes access to a tree shared between goroutines.
//
// Mutating calls go through Update, which holds an exclusive lock. Readers
// use View, or take a Snapshot, which is a private deep copy of the tree and
// may be inspected (e.g., rendered) without any further locking.
type Guarded struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewGuarded wraps t. Clients must not use t directly afterwards.
func NewGuarded(t *Tree) *Guarded {
	if t == nil {
		t = New()
	}
	return &Guarded{tree: t}
}

// Update calls f with exclusive access to the tree.
func (g *Guarded) Update(f func(*Tree) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return f(g.tree)
}

// View calls f with shared read access to the tree. f must not modify it.
func (g *Guarded) View(f func(*Tree) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return f(g.tree)
}

// Snapshot returns a deep copy of the tree, taken under the read lock.
func (g *Guarded) Snapshot() *Tree {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Clone()
}
