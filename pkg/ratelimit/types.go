package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request may proceed.
	Allowed bool

	// Limit is the maximum number of requests allowed in the window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the oldest tracked request leaves the window.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter is the interface rate limiting implementations satisfy.
type Limiter interface {
	// Allow checks whether one request is allowed for the key, consuming a
	// slot when it is.
	Allow(ctx context.Context, key string) (*Result, error)

	// Status reports the current state without consuming a slot.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset clears all tracked state for the key.
	Reset(ctx context.Context, key string) error
}

// Store is the storage backend for sliding-window limiters.
type Store interface {
	// RecordIfAllowed atomically counts requests inside the window and
	// records a new timestamp when the count is below limit. It returns
	// whether the timestamp was recorded and the resulting in-window count.
	RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (allowed bool, count int64, err error)

	// CountInWindow returns the number of timestamps within the window.
	CountInWindow(ctx context.Context, key string, window time.Duration) (int64, error)

	// Delete removes all state for the key.
	Delete(ctx context.Context, key string) error
}
