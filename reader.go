package edittree

import (
	"io"
	"unicode/utf8"
)

// Reader returns a reader for the UTF-8 encoded text of the tree. The reader
// also implements io.RuneReader. Reading from a reader after the tree has
// been modified returns ErrStaleCursor.
//
// Read and ReadRune may be mixed. If a preceding Read stopped within a
// multi-byte character, ReadRune returns that character with size set to the
// number of its bytes not yet read.
func (t *Tree) Reader() io.Reader {
	return &treeReader{cursor: t.NewCursor()}
}

type treeReader struct {
	cursor  *Cursor
	pending []byte // encoded bytes of a rune which did not fit into p
	split   rune   // the rune pending bytes belong to
}

var _ io.RuneReader = (*treeReader)(nil)

func (tr *treeReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(tr.pending) > 0 {
		n = copy(p, tr.pending)
		tr.pending = tr.pending[n:]
		if n == len(p) {
			return n, nil
		}
	}
	if tr.cursor.Stale() {
		return n, ErrStaleCursor
	}
	var buf [utf8.UTFMax]byte
	for n < len(p) {
		r, ok := tr.cursor.Next()
		if !ok {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
		w := utf8.EncodeRune(buf[:], r)
		k := copy(p[n:], buf[:w])
		n += k
		if k < w {
			tr.pending = append(tr.pending[:0], buf[k:w]...)
			tr.split = r
		}
	}
	return n, nil
}

func (tr *treeReader) ReadRune() (r rune, size int, err error) {
	if len(tr.pending) > 0 { // rest of a rune partially consumed by Read
		size = len(tr.pending)
		tr.pending = tr.pending[:0]
		return tr.split, size, nil
	}
	if tr.cursor.Stale() {
		return 0, 0, ErrStaleCursor
	}
	r, ok := tr.cursor.Next()
	if !ok {
		return 0, 0, io.EOF
	}
	if size = utf8.RuneLen(r); size < 0 {
		return utf8.RuneError, 3, nil
	}
	return r, size, nil
}
