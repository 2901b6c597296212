package store

import (
	"context"
	"time"

	"github.com/gofrs/flock"

	"taskcli/internal/service"
)

// lockRetryDelay is how often a contended lock is retried.
const lockRetryDelay = 25 * time.Millisecond

// lockPath returns the sidecar lock file for the store.
// The data file itself is replaced on every write, so it cannot carry the lock.
func (s *Store) lockPath() string {
	return s.path + ".lock"
}

// acquire takes the exclusive store lock, giving up after the lock timeout.
// The returned func releases it.
func (s *Store) acquire(ctx context.Context, op string) (func(), error) {
	if err := s.ensureDir(); err != nil {
		return nil, &service.Error{Op: op, Kind: service.ErrStorage, Err: err}
	}

	lctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	fl := flock.New(s.lockPath())
	locked, err := fl.TryLockContext(lctx, lockRetryDelay)
	if err != nil {
		return nil, &service.Error{Op: op, Kind: service.ErrLocked, Err: err}
	}
	if !locked {
		return nil, service.NewError(op, service.ErrLocked, "could not lock %s", s.lockPath())
	}

	s.logger.Debug("store locked", "op", op, "lock", s.lockPath())
	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Warn("unlock failed", "lock", s.lockPath(), "err", err)
		}
	}, nil
}
