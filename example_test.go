package treap_test

import (
	"fmt"

	"github.com/npillmayer/treap"
	"github.com/npillmayer/treap/tree"
)

func ExampleMap() {
	var m treap.Map[string, int]
	m.Set("pear", 3)
	m.Set("apple", 7)
	m.Set("fig", 5)
	snap := m.Snapshot()
	_ = m.Delete("pear")
	fmt.Println(m.String())
	fmt.Println(snap.String())
	if _, err := m.Get("pear"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// {apple:7 fig:5}
	// {apple:7 fig:5 pear:3}
	// treap: key not found: pear
}

func ExampleMap_Backward() {
	m := treap.New[int, string]()
	for i, s := range []string{"a", "b", "c"} {
		m.Set(i, s)
	}
	for k, v := range m.Backward() {
		fmt.Print(k, v, " ")
	}
	fmt.Println()
	// Output: 2c 1b 0a
}

func ExampleFromNode() {
	root := tree.Insert[int, int](tree.Leaf(2, 2), 1, 1)
	lesser, notLesser := tree.Split(root, 2)
	m := treap.FromNode(notLesser)
	fmt.Println(m.String(), tree.Len(lesser))
	// Output: {2:2} 1
}
