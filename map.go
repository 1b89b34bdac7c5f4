package treap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/treap/tree"
)

// Map is a persistent ordered map from keys to priorities.
//
// A map created by
//
//	Map[K, V]{}
//
// is a valid object and behaves like an empty map. A Map must not be written
// concurrently; see type Shared for a synchronized variant.
//
//	Operation     |   Cost
//	--------------+-------------
//	Get, Contains |   O(depth)
//	Set, Delete   |   O(depth)
//	Snapshot      |   O(1)
//	Len           |   O(n)
//	Iterate       |   O(n)
//
// The depth of the tree depends on the priorities chosen by the client.
type Map[K, V cmp.Ordered] struct {
	root tree.Node[K, V]
}

// New creates an empty map.
func New[K, V cmp.Ordered]() *Map[K, V] {
	return &Map[K, V]{root: tree.Empty[K, V]{}}
}

// FromNode creates a map holding the entries of an existing tree.
func FromNode[K, V cmp.Ordered](root tree.Node[K, V]) *Map[K, V] {
	if root == nil {
		root = tree.Empty[K, V]{}
	}
	return &Map[K, V]{root: root}
}

// Root returns the current tree of m.
func (m *Map[K, V]) Root() tree.Node[K, V] {
	if m == nil || m.root == nil {
		return tree.Empty[K, V]{}
	}
	return m.root
}

// Snapshot returns a copy of m, sharing the current tree with m. Later
// updates of m will not be visible in the snapshot, and vice versa.
func (m *Map[K, V]) Snapshot() Map[K, V] {
	return Map[K, V]{root: m.Root()}
}

// Contains reports whether key is present in m.
func (m *Map[K, V]) Contains(key K) bool {
	return tree.Contains(m.Root(), key)
}

// Get returns the priority of key. If key is not present, Get fails with
// ErrKeyNotFound.
func (m *Map[K, V]) Get(key K) (V, error) {
	return tree.Get(m.Root(), key)
}

// Set creates an entry for key or replaces the priority of an existing one.
func (m *Map[K, V]) Set(key K, priority V) {
	m.root = tree.Insert(m.Root(), key, priority)
}

// Delete removes the entry for key. If key is not present, Delete fails with
// ErrKeyNotFound and m is left unchanged.
func (m *Map[K, V]) Delete(key K) error {
	root, err := tree.Remove(m.Root(), key)
	if err != nil {
		return err
	}
	m.root = root
	return nil
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	return tree.Len(m.Root())
}

// Min returns the entry with the smallest key. ok is false for an empty map.
func (m *Map[K, V]) Min() (key K, priority V, ok bool) {
	return tree.Min(m.Root())
}

// Max returns the entry with the greatest key. ok is false for an empty map.
func (m *Map[K, V]) Max() (key K, priority V, ok bool) {
	return tree.Max(m.Root())
}

// All returns an iterator over the entries of m in ascending order of keys.
//
// The iterator works on the tree current at the time All is called; updates
// of m during iteration are not visible to it.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return tree.Ascending(m.Root())
}

// Backward returns an iterator over the entries of m in descending order of keys.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return tree.Descending(m.Root())
}

// Keys returns an iterator over the keys of m in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	all := m.All()
	return func(yield func(K) bool) {
		for k := range all {
			if !yield(k) {
				return
			}
		}
	}
}

// String returns the entries of m as {k1:v1 k2:v2 …}.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	sep := ""
	for k, v := range m.All() {
		fmt.Fprintf(&b, "%s%v:%v", sep, k, v)
		sep = " "
	}
	b.WriteByte('}')
	return b.String()
}
