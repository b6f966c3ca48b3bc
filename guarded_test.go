package edittree

import (
	"sync"
	"testing"
)

func TestGuardedConcurrentUpdates(t *testing.T) {
	g := NewGuarded(nil)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				err := g.Update(func(tree *Tree) error {
					return tree.Insert(rune('a'+w), tree.Size()/2)
				})
				if err != nil {
					t.Error(err)
					return
				}
				_ = g.View(func(tree *Tree) error {
					_ = tree.Height()
					return nil
				})
			}
		}(w)
	}
	wg.Wait()
	err := g.View(func(tree *Tree) error {
		if tree.Size() != 800 {
			t.Errorf("expected 800 characters, have %d", tree.Size())
		}
		return tree.Check()
	})
	if err != nil {
		t.Error(err)
	}
}

func TestGuardedSnapshot(t *testing.T) {
	g := NewGuarded(FromString("abc"))
	snap := g.Snapshot()
	_ = g.Update(func(tree *Tree) error {
		return tree.Append('d')
	})
	if snap.String() != "abc" {
		t.Errorf("snapshot should not see later updates, has %q", snap.String())
	}
	_ = g.View(func(tree *Tree) error {
		if tree.String() != "abcd" {
			t.Errorf("expected 'abcd', have %q", tree.String())
		}
		return nil
	})
}
