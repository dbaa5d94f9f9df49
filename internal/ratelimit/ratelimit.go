// Package ratelimit guards the analysis engine against abuse with a
// fixed-window request limiter keyed by caller identity.  The Limiter
// interface hides the counter store so the in-memory implementation can be
// swapped for a shared one (Redis) without touching callers.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of one limiter check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Limit is the window's request budget.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// RetryAfter is how long the caller must wait before the window resets.
	// Zero when Allowed.
	RetryAfter time.Duration
}

// LimitError is returned to callers whose quota is exhausted.  It carries
// the retry-after signal so transports can surface it distinctly from other
// failures.
type LimitError struct {
	RetryAfter time.Duration
}

func (e *LimitError) Error() string {
	return "rate limit exceeded, retry after " + e.RetryAfter.Round(time.Second).String()
}

// Limiter decides whether a caller may issue another request.
type Limiter interface {
	// Allow records one request attempt for key and returns the decision.
	// A rejected attempt does not consume quota.
	Allow(ctx context.Context, key string) (Decision, error)
}

// Default policy: five requests per caller per hour.
const (
	DefaultRequests = 5
	DefaultWindow   = time.Hour
)

type window struct {
	start time.Time
	count int
}

// FixedWindowLimiter is an in-memory fixed-window limiter.  Safe for
// concurrent use.  Correct only within a single process; multi-instance
// deployments need the Redis-backed implementation instead.
type FixedWindowLimiter struct {
	mu       sync.Mutex
	windows  map[string]window
	requests int
	window   time.Duration
	now      func() time.Time
}

// NewFixedWindowLimiter builds a limiter allowing requests per window for
// each distinct key.  Non-positive arguments fall back to the defaults.
func NewFixedWindowLimiter(requests int, windowSize time.Duration) *FixedWindowLimiter {
	if requests <= 0 {
		requests = DefaultRequests
	}
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	return &FixedWindowLimiter{
		windows:  make(map[string]window),
		requests: requests,
		window:   windowSize,
		now:      time.Now,
	}
}

// Allow implements Limiter.
func (l *FixedWindowLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		w = window{start: now}
	}

	if w.count >= l.requests {
		return Decision{
			Allowed:    false,
			Limit:      l.requests,
			Remaining:  0,
			RetryAfter: w.start.Add(l.window).Sub(now),
		}, nil
	}

	w.count++
	l.windows[key] = w
	return Decision{Allowed: true, Limit: l.requests, Remaining: l.requests - w.count}, nil
}

// Purge drops expired windows so long-running processes do not accumulate
// one map entry per caller forever.  Intended to be called periodically from
// a background goroutine.
func (l *FixedWindowLimiter) Purge() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.window {
			delete(l.windows, key)
		}
	}
}
