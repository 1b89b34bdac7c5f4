/*
Package tree implements the node hierarchy of a persistent treap.

A treap is a binary search tree ordered by key which is at the same time
heap-ordered by a priority attached to every key. Nodes in this package are
immutable: every operation which "modifies" a tree returns a new root, copying
the nodes along the affected path and sharing all other subtrees with the
input tree. Old roots stay valid and may be read concurrently without any
synchronization.

A node is either Empty or *Full. Operations are package-level functions
which switch on the variant:

	lesser, rest := tree.Split(root, 50)  // keys < 50 | keys >= 50
	root, err := tree.Merge(lesser, rest) // requires max(lesser) < min(rest)
	root = tree.Insert(root, 7, 3)        // insert or replace the priority of 7
	root, err = tree.Remove(root, 7)      // ErrKeyNotFound if 7 is missing

Priorities are supplied by the caller. The package does not draw random
priorities, hence the shape of a tree (and its depth) is a function of the
(key, priority) pairs it holds. Balancing is a concern of the client.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treap'
func tracer() tracing.Trace {
	return tracing.Select("treap")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
