package redis

import (
	"context"
	"time"

	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/internal/ratelimit"
	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// FixedWindowLimiter is a Redis-backed fixed-window limiter.  Unlike the
// in-memory implementation it stays correct when the engine runs as
// multiple instances, because every instance shares the same counters.
type FixedWindowLimiter struct {
	client   *Client
	requests int
	window   time.Duration
	logger   logging.Logger
}

var _ ratelimit.Limiter = (*FixedWindowLimiter)(nil)

// NewFixedWindowLimiter builds a limiter allowing requests per window for
// each distinct key.  Non-positive arguments fall back to the package
// defaults.
func NewFixedWindowLimiter(client *Client, requests int, window time.Duration, log logging.Logger) *FixedWindowLimiter {
	if requests <= 0 {
		requests = ratelimit.DefaultRequests
	}
	if window <= 0 {
		window = ratelimit.DefaultWindow
	}
	return &FixedWindowLimiter{client: client, requests: requests, window: window, logger: log}
}

// Allow implements ratelimit.Limiter using INCR plus a window-scoped TTL.
// The first increment in a window sets the expiry; subsequent increments
// reuse it, so the window boundary is shared across instances.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (ratelimit.Decision, error) {
	rkey := l.client.Key("ratelimit", key)

	count, err := l.client.rdb.Incr(ctx, rkey).Result()
	if err != nil {
		return ratelimit.Decision{}, errors.Wrap(err, errors.ErrCodeServiceUnavailable,
			"rate limit counter unavailable")
	}
	if count == 1 {
		if err := l.client.rdb.Expire(ctx, rkey, l.window).Err(); err != nil {
			l.logger.Warn("failed to set rate limit window expiry",
				logging.String("key", rkey), logging.Err(err))
		}
	}

	if count > int64(l.requests) {
		retryAfter := l.window
		if ttl, err := l.client.rdb.TTL(ctx, rkey).Result(); err == nil && ttl > 0 {
			retryAfter = ttl
		}
		return ratelimit.Decision{Allowed: false, Limit: l.requests, RetryAfter: retryAfter}, nil
	}

	return ratelimit.Decision{Allowed: true, Limit: l.requests, Remaining: l.requests - int(count)}, nil
}
