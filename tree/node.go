package tree

import (
	"cmp"
	"fmt"
)

// Node is a (sub-)tree of a treap. It is either Empty or *Full.
//
// Keys and priorities have to be cmp.Ordered, i.e. support == and a strict <.
// A nil Node is treated like Empty by all functions of this package.
type Node[K, V cmp.Ordered] interface {
	// IsEmpty reports whether the node is the Empty variant.
	IsEmpty() bool
	sealed(K, V)
}

// Empty is the empty subtree. It carries neither a (key, priority) pair nor
// children. All Empty values of the same type are equal.
type Empty[K, V cmp.Ordered] struct{}

// IsEmpty is always true for Empty.
func (Empty[K, V]) IsEmpty() bool { return true }
func (Empty[K, V]) sealed(K, V)   {}

func (Empty[K, V]) String() string { return "()" }

// Full is a non-empty subtree, holding a key, its priority and two children.
// Fields are not exported: a Full node never changes after construction.
type Full[K, V cmp.Ordered] struct {
	key      K
	priority V
	left     Node[K, V]
	right    Node[K, V]
}

// IsEmpty is always false for *Full.
func (f *Full[K, V]) IsEmpty() bool { return false }
func (f *Full[K, V]) sealed(K, V)   {}

// Key returns the key of f.
func (f *Full[K, V]) Key() K { return f.key }

// Priority returns the priority of f.
func (f *Full[K, V]) Priority() V { return f.priority }

// Left returns the subtree holding the keys smaller than f.Key().
func (f *Full[K, V]) Left() Node[K, V] { return f.left }

// Right returns the subtree holding the keys greater than f.Key().
func (f *Full[K, V]) Right() Node[K, V] { return f.right }

func (f *Full[K, V]) String() string {
	if f.left.IsEmpty() && f.right.IsEmpty() {
		return fmt.Sprintf("(%v:%v)", f.key, f.priority)
	}
	return fmt.Sprintf("(%v:%v %v %v)", f.key, f.priority, f.left, f.right)
}

// NewNode creates a full node. nil children are replaced by Empty.
//
// NewNode does not check the BST or heap property of the resulting tree;
// use Check to validate hand-made trees.
func NewNode[K, V cmp.Ordered](key K, priority V, left, right Node[K, V]) *Full[K, V] {
	return &Full[K, V]{
		key:      key,
		priority: priority,
		left:     normalize(left),
		right:    normalize(right),
	}
}

// Leaf creates a full node without children.
func Leaf[K, V cmp.Ordered](key K, priority V) *Full[K, V] {
	return &Full[K, V]{
		key:      key,
		priority: priority,
		left:     Empty[K, V]{},
		right:    Empty[K, V]{},
	}
}

// with returns a copy of f with new children. This is the only way nodes get
// "modified" by this package.
func (f *Full[K, V]) with(left, right Node[K, V]) *Full[K, V] {
	return &Full[K, V]{key: f.key, priority: f.priority, left: left, right: right}
}

func normalize[K, V cmp.Ordered](n Node[K, V]) Node[K, V] {
	if n == nil {
		return Empty[K, V]{}
	}
	return n
}

// full returns n as a *Full, if n is the full variant.
func full[K, V cmp.Ordered](n Node[K, V]) (*Full[K, V], bool) {
	f, ok := n.(*Full[K, V])
	return f, ok && f != nil
}
