package treap

import (
	"cmp"
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/treap/guard"
	"github.com/npillmayer/treap/tree"
)

// Shared is a map which may be used by concurrent goroutines.
//
// Trees are immutable, so the only state in need of protection is the root
// slot. Shared guards it with a mutex; readers work on snapshots and never
// block writers for longer than it takes to copy the root reference.
//
// Every committed version is broadcast to watchers (see Watch).
type Shared[K, V cmp.Ordered] struct {
	mx   guard.Mutex
	m    Map[K, V]
	cast *caster.Caster // broadcaster for new versions
}

// NewShared creates an empty shared map.
func NewShared[K, V cmp.Ordered]() *Shared[K, V] {
	return &Shared[K, V]{
		m:    Map[K, V]{root: tree.Empty[K, V]{}},
		cast: caster.New(nil),
	}
}

// Snapshot returns the current version of the map. The snapshot may be read
// without synchronization and is not affected by later updates.
func (s *Shared[K, V]) Snapshot() Map[K, V] {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.m.Snapshot()
}

// Contains reports whether key is present in the current version.
func (s *Shared[K, V]) Contains(key K) bool {
	snap := s.Snapshot()
	return snap.Contains(key)
}

// Get returns the priority of key in the current version, or ErrKeyNotFound.
func (s *Shared[K, V]) Get(key K) (V, error) {
	snap := s.Snapshot()
	return snap.Get(key)
}

// Len returns the number of entries of the current version.
func (s *Shared[K, V]) Len() int {
	snap := s.Snapshot()
	return snap.Len()
}

// Set creates or replaces the entry for key.
func (s *Shared[K, V]) Set(key K, priority V) {
	_ = s.Update(func(m *Map[K, V]) error {
		m.Set(key, priority)
		return nil
	})
}

// Delete removes the entry for key, or fails with ErrKeyNotFound.
func (s *Shared[K, V]) Delete(key K) error {
	return s.Update(func(m *Map[K, V]) error {
		return m.Delete(key)
	})
}

// Update applies fn to a snapshot of the current version, while holding
// the lock on the root slot. If fn returns nil, the snapshot (as modified by
// fn) becomes the new version of the map. Otherwise the map is left unchanged
// and the error is returned.
//
// fn must not call methods of s.
func (s *Shared[K, V]) Update(fn func(m *Map[K, V]) error) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	next := s.m.Snapshot()
	if err := fn(&next); err != nil {
		return err
	}
	if next.Root() == s.m.Root() {
		return nil
	}
	s.m = next
	s.cast.Pub(next)
	return nil
}

// Watch subscribes to new versions of the map. Every version committed after
// Watch returns is sent to the channel, in order of commitment. The channel is
// closed when ctx is done or the shared map is closed. Watch on a closed
// shared map fails with ErrClosed.
//
// Watchers have to keep up with writers: capacity is the number of versions
// which may be buffered before a writer is blocked.
func (s *Shared[K, V]) Watch(ctx context.Context, capacity uint) (<-chan Map[K, V], error) {
	// the subscription is ended by unwatch, never by the broadcaster
	sub, _ := s.cast.Sub(context.Background(), capacity)
	select {
	case <-s.cast.Done():
		return nil, ErrClosed
	default:
	}
	out := make(chan Map[K, V], capacity)
	go func() {
		defer close(out)
		for {
			select {
			case msg, open := <-sub:
				if !open { // broadcaster closed
					return
				}
				m, ok := msg.(Map[K, V])
				if !ok {
					T().Errorf("shared map: unexpected broadcast message of type %T", msg)
					continue
				}
				select {
				case out <- m:
				case <-ctx.Done():
					s.unwatch(sub)
					return
				}
			case <-ctx.Done():
				s.unwatch(sub)
				return
			}
		}
	}()
	return out, nil
}

// unwatch ends a subscription. sub is drained until the broadcaster has
// closed it, as a pending broadcast would block Unsub otherwise.
func (s *Shared[K, V]) unwatch(sub chan interface{}) {
	go func() {
		for range sub {
		}
	}()
	if s.cast.Unsub(sub) {
		T().Debugf("shared map: watch cancelled")
	}
}

// Close ends all watches. The map itself stays usable.
func (s *Shared[K, V]) Close() {
	if s.cast.Close() {
		T().Debugf("shared map: closed broadcaster")
	}
}
