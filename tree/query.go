package tree

import (
	"cmp"
	"fmt"
	"iter"
)

// Contains reports whether n holds an entry for key.
func Contains[K, V cmp.Ordered](n Node[K, V], key K) bool {
	_, ok := find(n, key)
	return ok
}

// Get returns the priority stored for key, or ErrKeyNotFound.
func Get[K, V cmp.Ordered](n Node[K, V], key K) (V, error) {
	if f, ok := find(n, key); ok {
		return f.priority, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

func find[K, V cmp.Ordered](n Node[K, V], key K) (*Full[K, V], bool) {
	for f, ok := full(n); ok; {
		if f.key == key {
			return f, true
		}
		if f.key < key {
			f, ok = full(f.right)
		} else {
			f, ok = full(f.left)
		}
	}
	return nil, false
}

// Len returns the number of entries in n. Lengths are not cached, Len is O(n).
func Len[K, V cmp.Ordered](n Node[K, V]) int {
	f, ok := full(n)
	if !ok {
		return 0
	}
	return 1 + Len(f.left) + Len(f.right)
}

// Height returns the number of nodes on the longest path from n to a leaf.
// The empty tree has height 0.
func Height[K, V cmp.Ordered](n Node[K, V]) int {
	f, ok := full(n)
	if !ok {
		return 0
	}
	return 1 + max(Height(f.left), Height(f.right))
}

// Min returns the entry with the smallest key. ok is false for an empty tree.
func Min[K, V cmp.Ordered](n Node[K, V]) (key K, priority V, ok bool) {
	for k, v := range Ascending(n) {
		return k, v, true
	}
	return
}

// Max returns the entry with the greatest key. ok is false for an empty tree.
func Max[K, V cmp.Ordered](n Node[K, V]) (key K, priority V, ok bool) {
	for k, v := range Descending(n) {
		return k, v, true
	}
	return
}

// Ascending returns an iterator over all (key, priority) entries of n in
// ascending order of keys.
//
// As trees are immutable, the iterator may be ranged over any number of times.
func Ascending[K, V cmp.Ordered](n Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(n, false, yield)
	}
}

// Descending returns an iterator over all (key, priority) entries of n in
// descending order of keys.
func Descending[K, V cmp.Ordered](n Node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		walk(n, true, yield)
	}
}

// walk is an in-order traversal (reverse in-order if backwards is set) with an
// explicit stack, as degenerated trees may be as deep as they are long.
func walk[K, V cmp.Ordered](n Node[K, V], backwards bool, yield func(K, V) bool) {
	var stack []*Full[K, V]
	near := func(f *Full[K, V]) Node[K, V] {
		if backwards {
			return f.right
		}
		return f.left
	}
	far := func(f *Full[K, V]) Node[K, V] {
		if backwards {
			return f.left
		}
		return f.right
	}
	cur := n
	for {
		for f, ok := full(cur); ok; f, ok = full(cur) {
			stack = append(stack, f)
			cur = near(f)
		}
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(top.key, top.priority) {
			return
		}
		cur = far(top)
	}
}
