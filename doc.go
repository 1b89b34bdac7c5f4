/*
Package treap offers a persistent ordered map, backed by a treap.

Treaps

A treap is a binary search tree on keys which is at the same time a
max-heap on priorities attached to the keys. In this package the priority is
the value of a map entry: clients decide about the priorities, and with it
about the shape of the tree. Random priorities produce a tree of expected
logarithmic depth; ordered or otherwise correlated priorities may degenerate
the tree into a linear list ("bamboo"). The package will not draw random
priorities on its own.

Persistence

Trees are immutable. Every update of a Map replaces the map's root with a new
version of the tree, which shares all unaffected subtrees with the previous
version. Snapshots of a Map are therefore O(1) and stay valid forever:

	var m treap.Map[string, int]
	m.Set("a", 1)
	snap := m.Snapshot()
	m.Set("b", 2)        // snap still holds just "a"

Concurrency

Readers of a snapshot never need synchronization. The single mutable slot
of a Map, its root, does. Type Shared guards the root with a mutex and
broadcasts every new version to watchers.

Sub-package tree contains the node-level algorithms (split, merge, insert,
remove and traversal), which may be used directly.

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
package treap

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treap/tree"
)

// T traces to the 'treap' tracer.
func T() tracing.Trace {
	return tracing.Select("treap")
}

// ErrKeyNotFound is flagged whenever a key to look up or delete is not
// present in a map. It is the same error as tree.ErrKeyNotFound.
var ErrKeyNotFound = tree.ErrKeyNotFound

// ErrClosed is flagged when watching a Shared map which has been closed.
var ErrClosed = errors.New("treap: shared map closed")
