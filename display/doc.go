/*
Package display renders edit trees for debugging.

Renderers see a tree only through the edittree.DisplayableTree and
edittree.Displayable interfaces. They never touch nodes directly and never
modify a tree. Fprint and Print draw a tree sideways onto a console, with the
root at the left margin and right subtrees above left subtrees. Dot writes a
tree in Graphviz DOT format.

To render a tree which is shared between goroutines, render a snapshot:

	g := edittree.NewGuarded(tree)
	...
	display.Print(g.Snapshot())

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'edittree'
func tracer() tracing.Trace {
	return tracing.Select("edittree")
}
