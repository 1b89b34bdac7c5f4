package treap

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treap/tree"
)

func TestZeroMapIsEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	var m Map[int, int]
	if m.Len() != 0 || m.Contains(1) {
		t.Errorf("expected zero map to be empty")
	}
	if _, err := m.Get(1); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if err := m.Delete(1); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if m.String() != "{}" {
		t.Errorf("expected {}, got %s", m.String())
	}
	m.Set(1, 2)
	if v, err := m.Get(1); err != nil || v != 2 {
		t.Errorf("expected m[1] = 2, got %d, %v", v, err)
	}
}

func TestMapTwoSidedBamboo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	m := New[int, int]()
	for i := 0; i <= 10; i++ {
		m.Set(i, i)
	}
	for i := 11; i < 20; i++ {
		m.Set(i, -i)
	}
	if m.Len() != 20 {
		t.Fatalf("expected 20 entries, have %d", m.Len())
	}
	i := 0
	for k, v := range m.All() {
		expected := i
		if i > 10 {
			expected = -i
		}
		if k != i || v != expected {
			t.Errorf("expected entry (%d, %d), got (%d, %d)", i, expected, k, v)
		}
		i++
	}
	if h := tree.Height(m.Root()); h != 11 {
		t.Errorf("expected tree of height 11, is %d", h)
	}
	if err := tree.Check(m.Root()); err != nil {
		t.Error(err)
	}
}

func TestMapSetReplaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	m := New[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, have %d", m.Len())
	}
	if m.String() != "{a:2 b:3}" {
		t.Errorf("unexpected map content %s", m.String())
	}
}

func TestMapDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	m := New[int, int]()
	for _, k := range rand.Perm(50) {
		m.Set(k, rand.IntN(1000))
	}
	for k := 0; k < 50; k += 2 {
		if err := m.Delete(k); err != nil {
			t.Fatalf("delete of %d failed: %v", k, err)
		}
	}
	if m.Len() != 25 {
		t.Fatalf("expected 25 entries left, have %d", m.Len())
	}
	before := m.Root()
	if err := m.Delete(0); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound for deleted key, got %v", err)
	}
	if m.Root() != before {
		t.Errorf("expected failed delete to leave the root untouched")
	}
	for k := range m.Keys() {
		if k%2 == 0 {
			t.Errorf("found deleted key %d", k)
		}
	}
}

func TestMapOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	m := New[int, int]()
	for _, k := range rand.Perm(100) {
		m.Set(k, rand.IntN(100))
	}
	keys := slices.Collect(m.Keys())
	if len(keys) != 100 || !slices.IsSorted(keys) {
		t.Errorf("expected 100 keys in ascending order, got %v", keys)
	}
	var backward []int
	for k := range m.Backward() {
		backward = append(backward, k)
	}
	slices.Reverse(backward)
	if !slices.Equal(keys, backward) {
		t.Errorf("expected backward iteration to reverse ascending order")
	}
	if k, _, ok := m.Min(); !ok || k != 0 {
		t.Errorf("expected min key 0, got %d", k)
	}
	if k, _, ok := m.Max(); !ok || k != 99 {
		t.Errorf("expected max key 99, got %d", k)
	}
}

func TestMapSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	m := New[string, int]()
	m.Set("a", 1)
	snap := m.Snapshot()
	m.Set("b", 2)
	if err := m.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if snap.String() != "{a:1}" {
		t.Errorf("snapshot changed to %s", snap.String())
	}
	if m.String() != "{b:2}" {
		t.Errorf("map is %s, expected {b:2}", m.String())
	}
	other := FromNode(snap.Root())
	other.Set("c", 3)
	if snap.Len() != 1 || other.Len() != 2 {
		t.Errorf("expected maps from a shared root to be independent")
	}
}
