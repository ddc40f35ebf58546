package folio

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(max int, window time.Duration) (*RequestLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewRequestLimiter(max, window)
	l.now = clock.now
	return l, clock
}

func TestRequestLimiterBlocksAfterMax(t *testing.T) {
	limiter, _ := newTestLimiter(2, time.Minute)
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second request to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third request to be blocked")
	}
}

func TestRequestLimiterResetsAfterWindow(t *testing.T) {
	limiter, clock := newTestLimiter(1, time.Minute)
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first request to be allowed")
	}
	clock.advance(30 * time.Second)
	if limiter.Allow(ip) {
		t.Fatalf("expected second request to be blocked")
	}

	clock.advance(31 * time.Second)
	if !limiter.Allow(ip) {
		t.Fatalf("expected request after window to be allowed")
	}
}

func TestRequestLimiterIsPerIP(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestRequestLimiterForgetsIdleIPs(t *testing.T) {
	limiter, clock := newTestLimiter(5, time.Minute)

	limiter.Allow("203.0.113.40")
	limiter.Allow("203.0.113.41")
	if got := limiter.tracked(); got != 2 {
		t.Fatalf("tracked = %d, want 2", got)
	}

	clock.advance(2 * time.Minute)
	limiter.Allow("203.0.113.42")
	if got := limiter.tracked(); got != 1 {
		t.Fatalf("tracked after sweep = %d, want 1", got)
	}
}
