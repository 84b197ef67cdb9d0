// Package lockfile provides exclusive file-based locks shared between
// independent gitmirror processes. Locks are OS advisory locks: they
// exclude other processes, not just goroutines, and are dropped
// automatically if the holder dies.
package lockfile

import (
	"github.com/gofrs/flock"

	"github.com/cperrin88/gitmirror/pkg/console"
	"github.com/cperrin88/gitmirror/pkg/errors"
)

// BusyError is returned by a non-blocking Acquire when another process
// already holds the lock. The message is supplied by the caller so it can
// name the operation that is being refused.
type BusyError struct {
	Msg string
}

func (e *BusyError) Error() string {
	return e.Msg
}

// Lock is a held file lock. Release must be called on every exit path; the
// lock file itself is left in place for reuse.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the exclusive lock at path, creating the file if needed.
//
// If the lock is free it is returned immediately. If it is held and
// blocking is false, Acquire fails with a BusyError carrying busyMsg. If it
// is held and blocking is true, a trace note is emitted and Acquire waits
// until the holder releases; there is no timeout, a holder that never
// releases is an operator-visible condition.
func Acquire(path, busyMsg string, blocking bool, log *console.Log) (*Lock, error) {
	fl := flock.New(path)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to lock %s", path)
	}
	if locked {
		return &Lock{fl: fl}, nil
	}

	if !blocking {
		return nil, &BusyError{Msg: busyMsg}
	}

	log.Trace("waiting for lock " + path)
	if err := fl.Lock(); err != nil {
		return nil, errors.Wrapf(err, "failed to lock %s", path)
	}
	return &Lock{fl: fl}, nil
}

// Release drops the lock. The lock file stays on disk.
func (l *Lock) Release() error {
	return l.fl.Unlock()
}
