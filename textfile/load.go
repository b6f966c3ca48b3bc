package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/edittree"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// fragQueueLen is the number of loaded fragments which may queue up in front
// of the assembler.
const fragQueueLen = 16

// fragment holds a span of bytes of a text file's content.
type fragment struct {
	content []byte
	pos     int64 // start position of this fragment within the file
	err     error // I/O error while loading, if any
}

// textFile represents an OS file which will be loaded as a tree.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a UTF-8 text file, and loads it as an edit
// tree. Clients may indicate a recommended fragment length. A fragSize of 0
// lets Load select a fragment length depending on the size of the file.
//
// Loading is done asynchronously in fragments, but Load waits for all
// fragments and returns the complete tree. Canceling ctx aborts loading.
func Load(ctx context.Context, name string, fragSize int64) (*edittree.Tree, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	defer tf.cast.Close()
	size := tf.info.Size()
	if size == 0 {
		return edittree.New(), nil
	}
	fragSize = fragmentSize(size, fragSize)
	count := int((size + fragSize - 1) / fragSize)
	// subscribe before the loader publishes the first fragment
	frags, ok := tf.cast.Sub(ctx, fragQueueLen)
	if !ok {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.New("text file loader closed prematurely")
	}
	tracer().Debugf("loading %s: %d bytes in %d fragments", name, size, count)
	go tf.loadFragments(ctx, fragSize)
	tree, err := tf.assemble(ctx, frags, count)
	if err != nil {
		tracer().Errorf("loading %s: %v", name, err)
		return nil, err
	}
	return tree, nil
}

// fragmentSize selects a fragment length for a file of the given size, if the
// client did not request a sensible one.
func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return min(fragSize, size)
	}
	if size < 64 {
		fragSize = size
	} else if size < 1024 {
		fragSize = 64
	} else if size < tenKb {
		fragSize = 256
	} else if size < hundredKb {
		fragSize = 512
	} else if size < oneMb {
		fragSize = twoKb
	} else {
		fragSize = sixKb
	}
	return fragSize
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// --- File loading goroutine ------------------------------------------------

// loadFragments reads the file fragment by fragment and publishes every
// fragment, in file order. It stops after the first failing fragment.
func (tf *textFile) loadFragments(ctx context.Context, fragSize int64) {
	size := tf.info.Size()
	for pos := int64(0); pos < size; pos += fragSize {
		length := min(fragSize, size-pos)
		buf := make([]byte, length)
		frag := &fragment{pos: pos}
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			frag.err = fmt.Errorf("error loading text fragment: %w", err)
		} else if int64(cnt) < length {
			frag.err = fmt.Errorf("not all bytes loaded for text fragment at %d", pos)
		}
		frag.content = buf[:cnt]
		tf.cast.Pub(frag)
		if frag.err != nil || ctx.Err() != nil {
			return
		}
	}
}

// --- Assembler -------------------------------------------------------------

// assemble receives count fragments and concatenates them into a tree.
func (tf *textFile) assemble(ctx context.Context, frags <-chan interface{}, count int) (*edittree.Tree, error) {
	tree := edittree.New()
	var carry []byte // incomplete character at the end of the previous fragment
	var next int64
	for i := 0; i < count; i++ {
		var frag *fragment
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case msg, ok := <-frags:
			if !ok {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, fmt.Errorf("loading %s: fragment stream ended after %d of %d fragments",
					tf.path, i, count)
			}
			frag = msg.(*fragment)
		}
		if frag.err != nil {
			return nil, frag.err
		}
		if frag.pos != next {
			return nil, fmt.Errorf("loading %s: expected fragment at %d, got %d", tf.path, next, frag.pos)
		}
		next += int64(len(frag.content))
		data := append(carry, frag.content...)
		cut := completePrefix(data)
		carry = append([]byte(nil), data[cut:]...)
		b := edittree.NewBuilder()
		if err := b.AppendBytes(data[:cut]); err != nil {
			return nil, fmt.Errorf("%w: %s, fragment at byte %d", err, tf.path, frag.pos)
		}
		if err := tree.Concatenate(b.Tree()); err != nil {
			return nil, err
		}
	}
	if len(carry) > 0 {
		return nil, fmt.Errorf("%w: %s ends within a character", edittree.ErrInvalidUTF8, tf.path)
	}
	return tree, nil
}

// completePrefix returns the length of the longest prefix of p which does not
// end in the middle of a multi-byte character.
func completePrefix(p []byte) int {
	for i := len(p) - 1; i >= 0 && i > len(p)-utf8.UTFMax; i-- {
		if utf8.RuneStart(p[i]) {
			if utf8.FullRune(p[i:]) {
				return len(p)
			}
			return i
		}
	}
	return len(p)
}
