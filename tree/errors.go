package tree

import "errors"

var (
	// ErrKeyNotFound signals a lookup or removal of a key which is not present.
	ErrKeyNotFound = errors.New("treap: key not found")
	// ErrOrderingViolation signals a merge of two trees where some key of the
	// first tree is not smaller than every key of the second tree.
	ErrOrderingViolation = errors.New("treap: merge ordering violated")
	// ErrInvariantBroken is reported by Check for trees violating the BST or
	// the heap property.
	ErrInvariantBroken = errors.New("treap: invariant broken")
)
