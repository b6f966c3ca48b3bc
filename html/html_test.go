package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/edittree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestTextFromHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := `<p>Hello <b>bold</b> World!</p><script>var x = 1;</script><p>Grüße</p>`
	tree, err := TextFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != "Hello bold World!Grüße" {
		t.Errorf("unexpected text %q", tree.String())
	}
	if err = tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestInnerText(t *testing.T) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(`<div><i>a</i>b<span>c</span></div>`), body)
	if err != nil {
		t.Fatal(err)
	}
	var div *html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode && n.Data == "div" {
			div = n
		}
	}
	if div == nil {
		t.Fatalf("no div element in fragment")
	}
	tree, err := InnerText(div)
	if err != nil {
		t.Fatal(err)
	}
	if tree.String() != "abc" {
		t.Errorf("expected inner text 'abc', have %q", tree.String())
	}
	if r, _ := tree.Get(1); r != 'b' {
		t.Errorf("expected 'b' at position 1, have %q", r)
	}
}

func TestInnerTextNil(t *testing.T) {
	if _, err := InnerText(nil); !errors.Is(err, edittree.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
}
