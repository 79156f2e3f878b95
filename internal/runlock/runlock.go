// Package runlock serializes invocations that mutate rotation state. Two
// concurrent runs against the same snapshot would both schedule the same
// speakers and then clobber each other's pool.
package runlock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Lock holds an exclusive advisory lock on a run lock file.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock without blocking. It fails immediately when
// another process already holds it.
func Acquire(path string) (*Lock, error) {
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("another run is in progress (lock held on %s)", path)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. Safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
