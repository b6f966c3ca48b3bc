/*
Package textfile provides API helpers to load UTF-8 text files as edit trees.

Files are read in fragments by a background goroutine, which broadcasts every
loaded fragment. An assembler turns fragments into trees and concatenates them
in order. Fragment boundaries need not align with character boundaries; a
character split between two fragments is carried over. Load itself is
synchronous and returns the finished tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'edittree'
func tracer() tracing.Trace {
	return tracing.Select("edittree")
}
