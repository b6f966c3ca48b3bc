/*
Package html creates edit trees from the textual content of HTML.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"

	"github.com/npillmayer/edittree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'edittree'
func tracer() tracing.Trace {
	return tracing.Select("edittree")
}

// InnerText creates an edit tree for the textual content of an HTML element and
// all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). The content of script and style
// elements is skipped.
func InnerText(n *html.Node) (*edittree.Tree, error) {
	if n == nil {
		return nil, edittree.ErrIllegalArguments
	}
	b := edittree.NewBuilder()
	if err := collectText(n, b); err != nil {
		return nil, err
	}
	return b.Tree(), nil
}

func collectText(n *html.Node, b *edittree.Builder) error {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return nil
		}
	case html.TextNode:
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}

// TextFromHTML creates an edit tree from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*edittree.Tree, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := edittree.NewBuilder()
	for _, n := range nodes {
		if err = collectText(n, b); err != nil {
			return nil, err
		}
	}
	tree := b.Tree()
	tracer().Debugf("text from HTML: %d characters", tree.Size())
	return tree, nil
}
