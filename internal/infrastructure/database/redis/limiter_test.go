package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
)

func newMockLimiter(t *testing.T, requests int, window time.Duration) (*FixedWindowLimiter, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	client := newClientWithBackend(db, "exitready", logging.NewNopLogger())
	return NewFixedWindowLimiter(client, requests, window, logging.NewNopLogger()), mock
}

func TestRedisLimiterAllowsWithinQuota(t *testing.T) {
	l, mock := newMockLimiter(t, 5, time.Hour)
	key := "exitready:ratelimit:caller-a"

	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Hour).SetVal(true)

	d, err := l.Allow(context.Background(), "caller-a")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if !d.Allowed || d.Remaining != 4 {
		t.Errorf("decision = %+v, want allowed with 4 remaining", d)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRedisLimiterRejectsOverQuota(t *testing.T) {
	l, mock := newMockLimiter(t, 5, time.Hour)
	key := "exitready:ratelimit:caller-a"

	mock.ExpectIncr(key).SetVal(6)
	mock.ExpectTTL(key).SetVal(20 * time.Minute)

	d, err := l.Allow(context.Background(), "caller-a")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if d.Allowed {
		t.Fatal("sixth request allowed, want rejected")
	}
	if d.RetryAfter != 20*time.Minute {
		t.Errorf("RetryAfter = %s, want 20m", d.RetryAfter)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRedisLimiterSetsExpiryOnlyOnFirstHit(t *testing.T) {
	l, mock := newMockLimiter(t, 5, time.Hour)
	key := "exitready:ratelimit:caller-a"

	mock.ExpectIncr(key).SetVal(3)

	d, err := l.Allow(context.Background(), "caller-a")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if !d.Allowed || d.Remaining != 2 {
		t.Errorf("decision = %+v, want allowed with 2 remaining", d)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRedisLimiterSurfacesBackendFailure(t *testing.T) {
	l, mock := newMockLimiter(t, 5, time.Hour)
	key := "exitready:ratelimit:caller-a"

	mock.ExpectIncr(key).SetErr(context.DeadlineExceeded)

	if _, err := l.Allow(context.Background(), "caller-a"); err == nil {
		t.Fatal("Allow swallowed a backend failure")
	}
}
