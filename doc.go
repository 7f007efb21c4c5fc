/*
Package seqtree offers a counting binary tree to hold an ordered, indexable
sequence of values.

Counting Trees

A counting tree stores every element of a sequence in a node of a binary tree.
Each node additionally knows how many elements live in the subtree below it
(including itself). Node placement is determined by position only: values are
never compared against each other, which distinguishes a counting tree from a
binary search tree. An in-order walk of the tree reproduces the sequence.

The structure trades indexed access for insertion: a flat slice has O(1)
indexed reads but has to shift every following element on an insertion in the
middle, i.e. O(n). A counting tree never moves existing elements and inserts
in O(depth).

	Operation     |   Tree          |  Slice
	--------------+-----------------+--------
	Insert        |   O(depth)      |   O(n)
	Index         |   O(depth)      |   O(1)
	Len           |   O(1)          |   O(1)
	Iterate       |   O(n)          |   O(n)

The tree is intentionally not balanced. For workloads where insertion
positions are spread pseudo-randomly over the sequence the expected depth
stays logarithmic. Workloads inserting at one end only degrade the tree to a
linked list with O(n) insertion. For small collections a plain slice is
faster and simpler and should be preferred; the break-even point is usually
somewhere between tens of thousands and a few million elements. Package
bench contains a harness to measure it.

Trees are not safe for concurrent use. Clients wanting to share a tree
between goroutines have to serialize access themselves, e.g. with a
sync.Mutex.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

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
package seqtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqtree'
func tracer() tracing.Trace {
	return tracing.Select("seqtree")
}

// SeqError is an error type for the seqtree module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is flagged whenever a position is outside of the
// valid range for an operation. For insertion this is [0…Len], for all other
// positional operations it is [0…Len).
const ErrIndexOutOfRange = SeqError("index out of range")

// ErrCorruptTree is flagged by Check if a node's size does not match the
// number of elements in its subtree.
const ErrCorruptTree = SeqError("corrupt tree")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
