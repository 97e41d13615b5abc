package service

import (
	"context"
	"time"
)

// LoginLockout throttles credential guessing per login identifier.
type LoginLockout interface {
	// Check returns the time the lock lifts, or the zero time when not locked.
	Check(ctx context.Context, key string) (time.Time, error)

	// RecordFailure counts a failed attempt and reports whether it tripped the lock.
	RecordFailure(ctx context.Context, key string) (locked bool, err error)

	// Clear resets the counter after a successful login.
	Clear(ctx context.Context, key string) error
}
