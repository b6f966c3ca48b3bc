package textfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/edittree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const lorem = `Lorem ipsum dolor sit amet, consetetur sadipscing elitr, sed diam
nonumy eirmod tempor invidunt ut labore et dolore magna aliquyam erat, sed
diam voluptua. Grüße aus Köln – “quoted” ✓ 日本語のテキスト 🙂.
`

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	name := writeFile(t, []byte(lorem))
	tree, err := Load(context.Background(), name, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != lorem {
		t.Errorf("loaded text differs from file content:\n%s", tree.String())
	}
	if err = tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestLoadSplitsCharactersAcrossFragments(t *testing.T) {
	name := writeFile(t, []byte(lorem))
	for _, fragSize := range []int64{1, 2, 3, 5, 7, 64} {
		tree, err := Load(context.Background(), name, fragSize)
		if err != nil {
			t.Fatalf("fragment size %d: %v", fragSize, err)
		}
		if tree.String() != lorem {
			t.Errorf("fragment size %d: loaded text differs from file content", fragSize)
		}
		if tree.Size() != len([]rune(lorem)) {
			t.Errorf("fragment size %d: size is %d, expected %d", fragSize, tree.Size(),
				len([]rune(lorem)))
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	name := writeFile(t, nil)
	tree, err := Load(context.Background(), name, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !tree.IsEmpty() {
		t.Errorf("expected empty tree, have %q", tree.String())
	}
}

func TestLoadInvalidUTF8(t *testing.T) {
	name := writeFile(t, []byte("abc\xffdef"))
	_, err := Load(context.Background(), name, 2)
	if !errors.Is(err, edittree.ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	name = writeFile(t, []byte("abc\xe2\x82"))
	_, err = Load(context.Background(), name, 0)
	if !errors.Is(err, edittree.ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8 for truncated character, got %v", err)
	}
}

func TestLoadNotARegularFile(t *testing.T) {
	if _, err := Load(context.Background(), t.TempDir(), 0); err == nil {
		t.Errorf("expected error when loading a directory")
	}
	missing := filepath.Join(t.TempDir(), "does-not-exist.txt")
	if _, err := Load(context.Background(), missing, 0); err == nil {
		t.Errorf("expected error when loading a missing file")
	}
}

func TestLoadCanceled(t *testing.T) {
	name := writeFile(t, []byte(strings.Repeat(lorem, 20)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, name, 16); err == nil {
		t.Errorf("expected loading with canceled context to fail")
	}
}

func TestFragmentSize(t *testing.T) {
	for _, c := range []struct {
		size, requested, expected int64
	}{
		{10, 0, 10},
		{500, 0, 64},
		{5000, 0, 256},
		{50000, 0, 512},
		{500000, 0, twoKb},
		{5000000, 0, sixKb},
		{5000, 100, 100},
		{50, 100, 50},
		{5000000, 20000, sixKb},
	} {
		if f := fragmentSize(c.size, c.requested); f != c.expected {
			t.Errorf("fragment size for %d bytes (requested %d) is %d, expected %d",
				c.size, c.requested, f, c.expected)
		}
	}
}

func TestCompletePrefix(t *testing.T) {
	for _, c := range []struct {
		text     string
		expected int
	}{
		{"abc", 3},
		{"ab\xe2\x82", 2},
		{"ab\xe2", 2},
		{"ab€", 5},
		{"🙂", 4},
		{"a\xf0\x9f\x99", 1},
		{"", 0},
	} {
		if n := completePrefix([]byte(c.text)); n != c.expected {
			t.Errorf("complete prefix of %q is %d, expected %d", c.text, n, c.expected)
		}
	}
}
