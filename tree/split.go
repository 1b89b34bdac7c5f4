package tree

import (
	"cmp"
	"fmt"
)

// Split partitions n by key. lesser holds all entries of n with keys smaller
// than key, notLesser holds the entries with keys greater than or equal to key.
// key need not be present in n.
//
// Nodes are copied along the search path only; all subtrees off that path are
// shared with n. Split does not rebalance.
func Split[K, V cmp.Ordered](n Node[K, V], key K) (lesser, notLesser Node[K, V]) {
	f, ok := full(n)
	if !ok {
		return Empty[K, V]{}, Empty[K, V]{}
	}
	if f.key < key {
		rest, greater := Split(f.right, key)
		return f.with(f.left, rest), greater
	}
	smaller, rest := Split(f.left, key)
	return smaller, f.with(rest, f.right)
}

// Merge joins two trees. Every key in a has to be strictly smaller than every
// key in b, otherwise Merge fails with ErrOrderingViolation.
//
// If b is empty, a is returned as is; if a is empty, b is returned as is.
// The root of the result is the root with the higher priority; on equal
// priorities the root of b wins.
func Merge[K, V cmp.Ordered](a, b Node[K, V]) (Node[K, V], error) {
	fa, okA := full(a)
	fb, okB := full(b)
	if !okB {
		return normalize(a), nil
	}
	if !okA {
		return b, nil
	}
	if maxA, minB := maxKey(fa), minKey(fb); !(maxA < minB) {
		tracer().Debugf("merge: max key %v of first tree >= min key %v of second tree", maxA, minB)
		return nil, fmt.Errorf("%w: %v >= %v", ErrOrderingViolation, maxA, minB)
	}
	return merge(fa, fb), nil
}

// merge is Merge without the ordering check. The check for the top-level call
// covers all recursive calls, as these operate on subtrees of a and b.
func merge[K, V cmp.Ordered](a, b Node[K, V]) Node[K, V] {
	fa, okA := full(a)
	fb, okB := full(b)
	if !okB {
		return normalize(a)
	}
	if !okA {
		return b
	}
	if fa.priority > fb.priority {
		return fa.with(fa.left, merge(fa.right, b))
	}
	return fb.with(merge(a, fb.left), fb.right)
}

// minKey returns the smallest key of a non-empty tree.
func minKey[K, V cmp.Ordered](f *Full[K, V]) K {
	for {
		l, ok := full(f.left)
		if !ok {
			return f.key
		}
		f = l
	}
}

// maxKey returns the greatest key of a non-empty tree.
func maxKey[K, V cmp.Ordered](f *Full[K, V]) K {
	for {
		r, ok := full(f.right)
		if !ok {
			return f.key
		}
		f = r
	}
}
