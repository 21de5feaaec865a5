// Package ratelimit implements fixed-window request counting over a
// pluggable store. Each (key, window) pair owns a counter that resets
// when the window rolls over; callers compare the returned count to
// their per-route limit.
package ratelimit

import (
	"context"
	"time"
)

// Store counts hits per key within fixed windows.
type Store interface {
	// Incr records one hit for key inside the current fixed window of the
	// given length, returning the hit count including this one and the
	// time at which the window resets.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, reset time.Time, err error)
}

// Sweeper is implemented by stores that hold expired windows in memory
// and need periodic cleanup.
type Sweeper interface {
	// Sweep drops windows that expired before now and reports how many
	// entries were removed.
	Sweep(now time.Time) int
}

// Limit describes a fixed-window budget for one class of requests.
type Limit struct {
	// Requests allowed per window.
	Requests int64
	// Window length.
	Window time.Duration
}

// Result is the outcome of consuming one request against a Limit.
type Result struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	Reset     time.Time
}

// Consume records a hit for key and evaluates it against lim.
func Consume(ctx context.Context, store Store, key string, lim Limit) (Result, error) {
	count, reset, err := store.Incr(ctx, key, lim.Window)
	if err != nil {
		return Result{}, err
	}

	remaining := lim.Requests - count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= lim.Requests,
		Limit:     lim.Requests,
		Remaining: remaining,
		Reset:     reset,
	}, nil
}
