package guard

import (
	"context"
	"fmt"
)

// Semaphore limits the number of goroutines in a critical section to a fixed
// number of permits.
type Semaphore struct {
	permits chan struct{}
}

// NewSemaphore creates a semaphore with n permits. n must be at least 1.
func NewSemaphore(n int) *Semaphore {
	if n < 1 {
		panic(fmt.Sprintf("guard: semaphore needs at least 1 permit, got %d", n))
	}
	return &Semaphore{permits: make(chan struct{}, n)}
}

// Acquire takes a permit, blocking until one is available or ctx is done.
// In the latter case ctx.Err() is returned and no permit is held.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case s.permits <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryAcquire takes a permit if one is available without blocking.
func (s *Semaphore) TryAcquire() bool {
	select {
	case s.permits <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release returns a permit. Releasing a semaphore without any permit taken
// fails with ErrReleaseUnheld.
func (s *Semaphore) Release() error {
	select {
	case <-s.permits:
		return nil
	default:
		return ErrReleaseUnheld
	}
}

// Locked reports whether all permits are taken.
func (s *Semaphore) Locked() bool {
	return len(s.permits) == cap(s.permits)
}

// Held returns the number of permits currently taken.
func (s *Semaphore) Held() int {
	return len(s.permits)
}

// Do calls fn while holding a permit. If no permit can be acquired before ctx
// is done, fn is not called and ctx.Err() is returned.
func (s *Semaphore) Do(ctx context.Context, fn func()) error {
	if err := s.Acquire(ctx); err != nil {
		return err
	}
	defer s.Release()
	fn()
	return nil
}
