package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"reviewflow/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const rateLimitWindow = time.Minute

// SlidingWindowLimiter counts requests per client over a trailing window.
// Admission check, eviction and recording happen as one step under the lock,
// so two concurrent requests can never both take the last free slot.
type SlidingWindowLimiter struct {
	mu        sync.Mutex
	clock     clockwork.Clock
	limit     int
	window    time.Duration
	clients   map[string][]time.Time
	lastSweep time.Time
}

func NewSlidingWindowLimiter(limit int, clock clockwork.Clock) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		clock:     clock,
		limit:     limit,
		window:    rateLimitWindow,
		clients:   make(map[string][]time.Time),
		lastSweep: clock.Now(),
	}
}

// Allow reports whether a request for key is admitted. Admitted requests are
// recorded; rejected attempts are not.
func (l *SlidingWindowLimiter) Allow(key string) bool {
	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(cutoff)
		l.lastSweep = now
	}

	kept := l.clients[key][:0]
	for _, ts := range l.clients[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.clients[key] = kept
		return false
	}

	l.clients[key] = append(kept, now)
	return true
}

// sweep drops clients whose windows have emptied out, so the map does not
// grow without bound across one-off clients. Caller holds the lock.
func (l *SlidingWindowLimiter) sweep(cutoff time.Time) {
	for key, stamps := range l.clients {
		active := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				active = true
				break
			}
		}
		if !active {
			delete(l.clients, key)
		}
	}
}

// RateLimit gates every request through the limiter, keyed by client IP.
func RateLimit(limiter *SlidingWindowLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", key),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseTooManyRequests(w, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
