package edittree

import (
	"errors"
	"io"
	"testing"
)

func TestCursorForward(t *testing.T) {
	s := "héllo, 日本"
	tree := FromString(s)
	cursor := tree.NewCursor()
	var out []rune
	for {
		r, ok := cursor.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}
	if string(out) != s {
		t.Errorf("expected %q, have %q", s, string(out))
	}
	if cursor.Pos() != tree.Size() {
		t.Errorf("expected cursor at end (%d), is at %d", tree.Size(), cursor.Pos())
	}
	for i := len(out) - 1; i >= 0; i-- {
		r, ok := cursor.Prev()
		if !ok || r != out[i] {
			t.Fatalf("prev at %d: expected %q, have %q (%v)", i, out[i], r, ok)
		}
	}
	if _, ok := cursor.Prev(); ok {
		t.Errorf("prev at start should fail")
	}
}

func TestCursorSeek(t *testing.T) {
	tree := appendedTree(t, "abcdefghijklmnop")
	cursor := tree.NewCursor()
	if err := cursor.Seek(10); err != nil {
		t.Fatal(err)
	}
	if r, _ := cursor.Next(); r != 'k' {
		t.Errorf("expected 'k' after seek to 10, have %q", r)
	}
	if r, _ := cursor.Prev(); r != 'k' {
		t.Errorf("expected prev to return 'k', have %q", r)
	}
	if r, _ := cursor.Prev(); r != 'j' {
		t.Errorf("expected prev to return 'j', have %q", r)
	}
	if err := cursor.Seek(tree.Size()); err != nil {
		t.Errorf("seek to end should be legal, got %v", err)
	}
	if r, _ := cursor.Prev(); r != 'p' {
		t.Errorf("expected 'p' before end, have %q", r)
	}
	if err := cursor.Seek(17); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestCursorStale(t *testing.T) {
	tree := FromString("abc")
	cursor := tree.NewCursor()
	_, _ = cursor.Next()
	if cursor.Stale() {
		t.Fatalf("cursor should not be stale before modification")
	}
	_ = tree.Append('d')
	if !cursor.Stale() {
		t.Errorf("cursor should be stale after modification")
	}
	if _, ok := cursor.Next(); ok {
		t.Errorf("stale cursor should not move")
	}
	if err := cursor.Seek(0); !errors.Is(err, ErrStaleCursor) {
		t.Errorf("expected ErrStaleCursor, got %v", err)
	}
	cursor = New().NewCursor()
	if _, ok := cursor.Next(); ok {
		t.Errorf("cursor on empty tree should not move")
	}
}

func TestReader(t *testing.T) {
	s := "Grüße aus Köln 🙂"
	tree := FromString(s)
	b, err := io.ReadAll(tree.Reader())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != s {
		t.Errorf("expected %q, have %q", s, string(b))
	}
	// one byte at a time splits multi-byte characters
	r := tree.Reader()
	var out []byte
	p := make([]byte, 1)
	for {
		n, err := r.Read(p)
		out = append(out, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if string(out) != s {
		t.Errorf("expected %q from single byte reads, have %q", s, string(out))
	}
}

func TestRuneReader(t *testing.T) {
	tree := FromString("aö🙂")
	rr := tree.Reader().(io.RuneReader)
	for _, c := range []struct {
		r    rune
		size int
	}{{'a', 1}, {'ö', 2}, {'🙂', 4}} {
		r, size, err := rr.ReadRune()
		if err != nil || r != c.r || size != c.size {
			t.Errorf("expected %q/%d, have %q/%d (%v)", c.r, c.size, r, size, err)
		}
	}
	if _, _, err := rr.ReadRune(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReaderStale(t *testing.T) {
	tree := FromString("abc")
	r := tree.Reader()
	p := make([]byte, 1)
	if _, err := r.Read(p); err != nil {
		t.Fatal(err)
	}
	_ = tree.Append('d')
	if _, err := r.Read(p); !errors.Is(err, ErrStaleCursor) {
		t.Errorf("expected ErrStaleCursor, got %v", err)
	}
}

func TestReadRuneAfterSplitRead(t *testing.T) {
	tree := FromString("öx")
	r := tree.Reader()
	p := make([]byte, 1)
	if n, err := r.Read(p); n != 1 || err != nil || p[0] != 0xc3 {
		t.Fatalf("expected first byte of 'ö', have %x (%d, %v)", p[:n], n, err)
	}
	rr := r.(io.RuneReader)
	c, size, err := rr.ReadRune()
	if err != nil || c != 'ö' || size != 1 {
		t.Errorf("expected rest of 'ö' with size 1, have %q/%d (%v)", c, size, err)
	}
	c, size, err = rr.ReadRune()
	if err != nil || c != 'x' || size != 1 {
		t.Errorf("expected 'x', have %q/%d (%v)", c, size, err)
	}
	if _, _, err = rr.ReadRune(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}
