package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

// newTestLimiter returns a limiter with a controllable clock.
func newTestLimiter(requests int, window time.Duration) (*FixedWindowLimiter, *time.Time) {
	l := NewFixedWindowLimiter(requests, window)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

// Five requests per hour: the sixth within the window is rejected with a
// retry-after signal, and a request after the window resets succeeds.
func TestFixedWindowLimit(t *testing.T) {
	l, now := newTestLimiter(5, time.Hour)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		d, err := l.Allow(ctx, "caller-a")
		if err != nil {
			t.Fatalf("Allow #%d failed: %v", i+1, err)
		}
		if !d.Allowed {
			t.Fatalf("request #%d rejected, want allowed", i+1)
		}
		if d.Limit != 5 || d.Remaining != 4-i {
			t.Errorf("request #%d limit/remaining = %d/%d, want 5/%d", i+1, d.Limit, d.Remaining, 4-i)
		}
	}

	d, err := l.Allow(ctx, "caller-a")
	if err != nil {
		t.Fatalf("Allow #6 failed: %v", err)
	}
	if d.Allowed {
		t.Fatal("sixth request allowed, want rejected")
	}
	if d.RetryAfter <= 0 || d.RetryAfter > time.Hour {
		t.Errorf("RetryAfter = %s, want in (0, 1h]", d.RetryAfter)
	}

	// One hour later the window has reset.
	*now = now.Add(time.Hour)
	d, _ = l.Allow(ctx, "caller-a")
	if !d.Allowed {
		t.Fatal("request after window reset rejected")
	}
}

func TestFixedWindowIsolatesCallers(t *testing.T) {
	l, _ := newTestLimiter(1, time.Hour)
	ctx := context.Background()

	if d, _ := l.Allow(ctx, "caller-a"); !d.Allowed {
		t.Fatal("caller-a first request rejected")
	}
	if d, _ := l.Allow(ctx, "caller-a"); d.Allowed {
		t.Fatal("caller-a second request allowed")
	}
	if d, _ := l.Allow(ctx, "caller-b"); !d.Allowed {
		t.Fatal("caller-b blocked by caller-a's quota")
	}
}

func TestFixedWindowRejectionDoesNotConsumeQuota(t *testing.T) {
	l, now := newTestLimiter(2, time.Hour)
	ctx := context.Background()

	l.Allow(ctx, "k")
	l.Allow(ctx, "k")
	for i := 0; i < 10; i++ {
		l.Allow(ctx, "k") // rejected, must not extend the window
	}

	*now = now.Add(time.Hour)
	if d, _ := l.Allow(ctx, "k"); !d.Allowed {
		t.Fatal("window did not reset after repeated rejections")
	}
}

func TestFixedWindowDefaults(t *testing.T) {
	l := NewFixedWindowLimiter(0, 0)
	if l.requests != DefaultRequests || l.window != DefaultWindow {
		t.Errorf("defaults = %d/%s, want %d/%s", l.requests, l.window, DefaultRequests, DefaultWindow)
	}
}

func TestFixedWindowConcurrentAccess(t *testing.T) {
	l := NewFixedWindowLimiter(100, time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	allowed := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, _ := l.Allow(ctx, "shared")
			allowed <- d.Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	if count != 100 {
		t.Errorf("allowed %d of 200 concurrent requests, want exactly 100", count)
	}
}

func TestPurge(t *testing.T) {
	l, now := newTestLimiter(5, time.Hour)
	ctx := context.Background()

	l.Allow(ctx, "a")
	l.Allow(ctx, "b")
	*now = now.Add(2 * time.Hour)
	l.Allow(ctx, "c")

	l.Purge()
	if _, ok := l.windows["a"]; ok {
		t.Error("expired window for a survived purge")
	}
	if _, ok := l.windows["c"]; !ok {
		t.Error("live window for c removed by purge")
	}
}
