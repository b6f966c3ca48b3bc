package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/edittree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFprintSmallTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := edittree.FromString("abc")
	var buf bytes.Buffer
	if err := Fprint(&buf, tree); err != nil {
		t.Fatal(err)
	}
	expected := "    ┌───┤ c 0=\n" +
		"────┤ b 1=\n" +
		"    └───┤ a 0=\n"
	if buf.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, buf.String())
	}
}

func TestFprintEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, edittree.New()); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "────┤ empty\n" {
		t.Errorf("unexpected output for empty tree: %q", buf.String())
	}
}

func TestFprintLineCount(t *testing.T) {
	tree := edittree.FromString("Hello World, how are you?")
	var buf bytes.Buffer
	if err := Fprint(&buf, tree); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	lines := strings.Count(buf.String(), "\n")
	if lines != tree.Size() {
		t.Errorf("expected one line per character (%d), have %d", tree.Size(), lines)
	}
}

func TestConsoleQuotesUnprintable(t *testing.T) {
	tree := edittree.FromChar('\n')
	var buf bytes.Buffer
	if err := Fprint(&buf, tree); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"\n" 0=`) {
		t.Errorf("expected newline to be quoted, got %q", buf.String())
	}
}

func TestConsoleTruncatesLines(t *testing.T) {
	tree := edittree.FromString("abcdefgh")
	c := &Console{Width: 12}
	var buf bytes.Buffer
	if err := c.Fprint(&buf, tree); err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if n := len([]rune(line)); n > 12 {
			t.Errorf("line %q has %d characters, limit is 12", line, n)
		}
	}
}

func TestConsoleColorsBalanceTags(t *testing.T) {
	palette := DefaultPalette()
	for _, col := range palette {
		col.EnableColor()
	}
	c := &Console{Palette: palette}
	var buf bytes.Buffer
	if err := c.Fprint(&buf, edittree.FromString("ab")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected colored output, got %q", buf.String())
	}
}

func TestConsoleKeepsColorWhenTruncating(t *testing.T) {
	palette := DefaultPalette()
	for _, col := range palette {
		col.EnableColor()
	}
	c := &Console{Palette: palette, Width: 12}
	var buf bytes.Buffer
	if err := c.Fprint(&buf, edittree.FromString("abcdefgh")); err != nil {
		t.Fatal(err)
	}
	truncated := 0
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("line %q lost the color of its balance tag", line)
		}
		visible := line[:strings.Index(line, "\x1b[")]
		if n := len([]rune(visible)); n > 11 {
			t.Errorf("line %q has %d characters before its balance tag, limit is 11", line, n)
		}
		if strings.Contains(visible, "…") {
			truncated++
		}
	}
	if truncated == 0 {
		t.Errorf("expected some lines to be truncated")
	}
}

func TestDot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	if err := Dot(&buf, edittree.FromString("abc")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	if n := strings.Count(out, "->"); n != 2 {
		t.Errorf("expected 2 edges, have %d", n)
	}
	if !strings.Contains(out, `label="b\n1 ="`) {
		t.Errorf("expected root label for 'b'")
	}
}

func TestDotPlaceholderAndEscaping(t *testing.T) {
	var buf bytes.Buffer
	// 'b' at the root leans left, with a single left child '"'
	if err := Dot(&buf, edittree.FromString(`"b`)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "->"); n != 2 {
		t.Errorf("expected an edge to the child and one to a placeholder, have %d edges", n)
	}
	if !strings.Contains(out, `label="b\n1 /"`) {
		t.Errorf("expected root 'b' leaning left, got\n%s", out)
	}
	if !strings.Contains(out, `label="\"\n0 ="`) {
		t.Errorf("expected escaped quote character, got\n%s", out)
	}
}

func TestDotEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Dot(&buf, edittree.New()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty tree should have no edges")
	}
}
