package guard

import (
	"sync"
	"sync/atomic"
)

// Mutex is a mutual exclusion lock. The zero value is an unlocked mutex.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	mx     sync.Mutex
	locked atomic.Bool
}

// Lock locks m, blocking until m is available.
func (m *Mutex) Lock() {
	m.mx.Lock()
	m.locked.Store(true)
}

// Unlock unlocks m. It is a run-time error if m is not locked.
func (m *Mutex) Unlock() {
	m.locked.Store(false)
	m.mx.Unlock()
}

// Locked reports whether m is currently held by some goroutine.
// The result is a snapshot and may be outdated as soon as it is returned.
func (m *Mutex) Locked() bool {
	return m.locked.Load()
}

// Do calls fn while holding m.
func (m *Mutex) Do(fn func()) {
	m.Lock()
	defer m.Unlock()
	fn()
}
