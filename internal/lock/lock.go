// Package lock provides the advisory, OS-level lock cmd/builddriver takes
// around a build run so two invocations of the CLI never execute against
// the same output tree concurrently. Grounded on cloudposse-atmos's
// flockFileLock (pkg/cache/filelock_unix.go), simplified to a single
// blocking-with-timeout acquisition since a build run has no read/write
// distinction to make.
package lock

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	retries = 50
	delay   = 20 * time.Millisecond
)

// Lock wraps an acquired advisory file lock.
type Lock struct {
	flock *flock.Flock
}

// Acquire creates (if necessary) and locks ".build.lock" inside dir,
// retrying briefly before giving up.
func Acquire(dir string) (*Lock, error) {
	path := filepath.Join(dir, ".build.lock")
	fl := flock.New(path)

	var locked bool
	var err error
	for i := 0; i < retries; i++ {
		locked, err = fl.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquiring build lock at %s: %w", path, err)
		}
		if locked {
			return &Lock{flock: fl}, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("build lock at %s held by another process", path)
}

// Release unlocks the lock.
func (l *Lock) Release() error {
	return l.flock.Unlock()
}
