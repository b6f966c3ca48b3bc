/*
Package edittree implements a height-balanced binary tree with rank, suitable
as the backing store of a text editor's buffer.

Edit Trees

An edit tree stores a text as a sequence of characters, one character per
tree node. Each node carries its rank, i.e. the number of nodes in its left
subtree. Ranks let the tree act as an order-statistics index: the character
at position i is found by descending from the root and comparing i with the
ranks along the way, without ever storing absolute positions. Absolute
positions would have to be rewritten on every insertion; ranks only change
along a single root-to-leaf path.

The tree is kept height-balanced in the manner of AVL trees. Instead of
storing heights, every node carries a balance tag telling which of its
subtrees (if any) is one level taller. After an insertion or deletion the
tree is retraced upwards from the point of edit and, where a node gets out
of balance, restructured by a single or a double rotation.

	Operation        |   EditTree
	-----------------+--------------
	Get              |   O(log n)
	Insert, Delete   |   O(log n)
	Split            |   O(log n)
	Concatenate      |   O(log n)
	FromString       |   O(n)
	String           |   O(n)

Edit trees are not safe for concurrent mutation. Clients which need to share
a tree between goroutines may wrap it into a Guarded.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package edittree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'edittree'
func tracer() tracing.Trace {
	return tracing.Select("edittree")
}

// TreeError is an error type for the edittree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is negative or beyond
// the valid range of an operation.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrSelfOperation is flagged if a tree is asked to operate on itself where
// this is not possible, e.g. when concatenating a tree to itself.
const ErrSelfOperation = TreeError("operation of tree on itself")

// ErrCorruptTree signals a structural impossibility, i.e. a node has been
// expected where there is none, or an invariant does not hold.
const ErrCorruptTree = TreeError("tree structure corrupt")

// ErrTreeCompleted signals that a builder has already completed a tree and
// it's illegal to further add text.
const ErrTreeCompleted = TreeError("forbidden to add text; tree has been completed")

// ErrStaleCursor is flagged when a cursor is used after its tree has been
// modified.
const ErrStaleCursor = TreeError("cursor is stale; tree has been modified")

// ErrInvalidUTF8 is flagged if text to build a tree from is not valid UTF-8.
const ErrInvalidUTF8 = TreeError("invalid UTF-8 text")

// ErrCapacityExceeded is flagged when an insertion would grow a tree beyond
// its configured maximum size.
const ErrCapacityExceeded = TreeError("tree capacity exceeded")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
