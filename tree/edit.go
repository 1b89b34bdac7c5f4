package tree

import (
	"cmp"
	"fmt"
)

// Insert returns a tree which holds key with the given priority, in addition
// to all entries of n. If key is already present in n, its priority is
// replaced.
func Insert[K, V cmp.Ordered](n Node[K, V], key K, priority V) Node[K, V] {
	lesser, notLesser := Split(n, key)
	greater := notLesser
	if f, ok := full(notLesser); ok && minKey(f) == key {
		greater = WithoutSmallest(notLesser)
	}
	t, err := Merge[K, V](lesser, Leaf(key, priority))
	assert(err == nil, "Insert: cannot merge lesser keys with new key")
	t, err = Merge(t, greater)
	assert(err == nil, "Insert: cannot merge greater keys")
	return t
}

// Remove returns a tree without the entry for key. If key is not present,
// Remove fails with ErrKeyNotFound and returns n unchanged.
func Remove[K, V cmp.Ordered](n Node[K, V], key K) (Node[K, V], error) {
	if !Contains(n, key) {
		tracer().Debugf("remove: key %v not present", key)
		return normalize(n), fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	lesser, notLesser := Split(n, key)
	f, ok := full(notLesser)
	// by the BST property the smallest key not less than key is key itself
	assert(ok && minKey(f) == key, "Remove: split did not isolate the key to remove")
	t, err := Merge(lesser, WithoutSmallest(notLesser))
	assert(err == nil, "Remove: cannot re-merge split trees")
	return t, nil
}

// WithoutSmallest returns the tree without the entry with the smallest key.
// It must not be called for an empty tree.
func WithoutSmallest[K, V cmp.Ordered](n Node[K, V]) Node[K, V] {
	f, ok := full(n)
	assert(ok, "WithoutSmallest called for empty tree")
	if f.left.IsEmpty() {
		return f.right
	}
	return f.with(WithoutSmallest(f.left), f.right)
}
