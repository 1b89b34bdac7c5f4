/*
Package guard provides small lock primitives: a Mutex which can report its
state, and a counting Semaphore with context-aware acquisition.

Both come with a Do method executing a function in a critical section, which
releases the lock even if the function panics.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package guard

// GuardError is an error type for the guard package.
type GuardError string

func (e GuardError) Error() string {
	return string(e)
}

// ErrReleaseUnheld is flagged when a semaphore is released more often than it
// has been acquired.
const ErrReleaseUnheld = GuardError("guard: release of a semaphore which is not held")
