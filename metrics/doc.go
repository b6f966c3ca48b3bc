/*
Package metrics provides some pre-manufactured metrics on texts held in edit
trees.

Metrics work on a range of character positions [i,j) of a tree and report
locations as character positions, never as byte offsets. Available metrics
are line counting, delimiter search, word spans and first-fit line wrapping.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'edittree'
func tracer() tracing.Trace {
	return tracing.Select("edittree")
}
