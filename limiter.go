package folio

import (
	"sync"
	"time"
)

// RequestLimiter caps API requests per client IP within a sliding window.
type RequestLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
	swept  time.Time
	now    func() time.Time
}

// NewRequestLimiter allows max requests per IP per window.
func NewRequestLimiter(max int, window time.Duration) *RequestLimiter {
	return &RequestLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Allow records a request from ip and reports whether it is within the limit.
// Rejected requests are not recorded.
func (l *RequestLimiter) Allow(ip string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Idle IPs are dropped at most once per window.
	if now.Sub(l.swept) >= l.window {
		for k, hits := range l.hits {
			if kept := pruneHits(hits, cutoff); len(kept) == 0 {
				delete(l.hits, k)
			} else {
				l.hits[k] = kept
			}
		}
		l.swept = now
	}

	kept := pruneHits(l.hits[ip], cutoff)
	if len(kept) >= l.max {
		l.hits[ip] = kept
		return false
	}
	l.hits[ip] = append(kept, now)
	return true
}

// RetryAfter is the longest a rejected client has to wait.
func (l *RequestLimiter) RetryAfter() time.Duration { return l.window }

func (l *RequestLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

func pruneHits(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
