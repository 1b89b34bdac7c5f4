package treap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSharedConcurrentWriters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	s := NewShared[int, int]()
	defer s.Close()
	snap := s.Snapshot()
	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				s.Set(w*100+i, i)
			}
		}()
	}
	// readers work on snapshots while writers proceed
	for range 10 {
		r := s.Snapshot()
		prev := -1
		for k := range r.Keys() {
			if k <= prev {
				t.Errorf("snapshot keys out of order: %d after %d", k, prev)
			}
			prev = k
		}
	}
	wg.Wait()
	if s.Len() != 400 {
		t.Errorf("expected 400 entries, have %d", s.Len())
	}
	if snap.Len() != 0 {
		t.Errorf("expected initial snapshot to stay empty, has %d entries", snap.Len())
	}
	if !s.Contains(399) {
		t.Errorf("expected key 399 to be present")
	}
}

func TestSharedDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	s := NewShared[string, int]()
	defer s.Close()
	s.Set("x", 1)
	if err := s.Delete("y"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
	if err := s.Delete("x"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("x"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected x to be deleted, got %v", err)
	}
}

func TestSharedWatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	s := NewShared[string, int]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	versions, err := s.Watch(ctx, 8)
	if err != nil {
		t.Fatal(err)
	}
	s.Set("a", 1)
	s.Set("b", 2)
	_ = s.Delete("nope") // failed updates are not broadcast
	if err := s.Delete("a"); err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{"{a:1}", "{a:1 b:2}", "{b:2}"} {
		select {
		case m := <-versions:
			if m.String() != expected {
				t.Errorf("expected version %s, got %s", expected, m.String())
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for version %s", expected)
		}
	}
	s.Close()
	select {
	case _, open := <-versions:
		if open {
			t.Errorf("expected watch channel to be closed after Close")
		}
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for watch channel to close")
	}
	if _, err := s.Watch(ctx, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	s.Set("c", 3) // still usable after Close
	if s.Len() != 2 {
		t.Errorf("expected 2 entries, have %d", s.Len())
	}
}

func TestSharedWatchAfterClose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	s := NewShared[int, int]()
	s.Close()
	versions, err := s.Watch(context.Background(), 1)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed for watch on closed map, got %v", err)
	}
	if versions != nil {
		t.Errorf("expected no channel for watch on closed map")
	}
}

func TestSharedWatchCancelWithoutWrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	s := NewShared[int, int]()
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	versions, err := s.Watch(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	cancel()
	select {
	case _, open := <-versions:
		if open {
			t.Errorf("expected no version to be sent")
		}
	case <-time.After(time.Second):
		t.Fatalf("watch channel not closed after cancellation")
	}
}

func TestSharedWatchCancelReleasesWriters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	s := NewShared[int, int]()
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	versions, err := s.Watch(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() { // nobody reads versions, so writers will block
		defer close(done)
		for i := range 10 {
			s.Set(i, i)
		}
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("writers still blocked after watch has been cancelled")
	}
	for range versions { // drains buffered versions until closed
	}
	if s.Len() != 10 {
		t.Errorf("expected 10 entries, have %d", s.Len())
	}
}
