package tree

import (
	"cmp"
	"fmt"
)

// Check validates the treap invariants of n:
//
//   - BST property: keys in a left subtree are smaller, keys in a right subtree
//     are greater than the key of their parent;
//   - heap property: no child has a priority greater than its parent.
//
// Trees produced by the functions of this package are always valid. Check is
// meant for tests and for trees built by hand with NewNode.
func Check[K, V cmp.Ordered](n Node[K, V]) error {
	return checkNode(n, nil, nil)
}

func checkNode[K, V cmp.Ordered](n Node[K, V], lo, hi *K) error {
	f, ok := full(n)
	if !ok {
		return nil
	}
	if lo != nil && !(*lo < f.key) {
		return fmt.Errorf("%w: key %v not greater than ancestor key %v", ErrInvariantBroken, f.key, *lo)
	}
	if hi != nil && !(f.key < *hi) {
		return fmt.Errorf("%w: key %v not smaller than ancestor key %v", ErrInvariantBroken, f.key, *hi)
	}
	for _, child := range [...]Node[K, V]{f.left, f.right} {
		if c, ok := full(child); ok && c.priority > f.priority {
			return fmt.Errorf("%w: priority %v of key %v exceeds priority %v of parent key %v",
				ErrInvariantBroken, c.priority, c.key, f.priority, f.key)
		}
	}
	if err := checkNode(f.left, lo, &f.key); err != nil {
		return err
	}
	return checkNode(f.right, &f.key, hi)
}
