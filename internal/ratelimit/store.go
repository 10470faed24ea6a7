// Package ratelimit provides the counting backend for the sliding-window
// rate limiter. The endpoint only sees the Store interface, so process memory
// can be swapped for a shared Redis store without touching handler logic.
package ratelimit

import (
	"context"
	"time"
)

// Store counts requests per key inside a window of the given duration.
type Store interface {
	// Increment records one request for key and returns the count inside the
	// current window together with the instant the window resets.
	Increment(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}
