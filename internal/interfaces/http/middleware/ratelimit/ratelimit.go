package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP with a token bucket.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*client
	rps      rate.Limit
	burst    int
	ttl      time.Duration
	lastSeen time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second with
// the given burst. Idle client buckets are dropped after ttl.
func NewRateLimiter(rps, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}
}

// Middleware rejects requests exceeding the per-IP budget with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(r.RemoteAddr) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.sweep(now)

	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.Allow()
}

// sweep drops buckets idle longer than ttl. Runs at most once per ttl so
// the hot path stays cheap.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSeen) < rl.ttl {
		return
	}
	rl.lastSeen = now

	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.ttl {
			delete(rl.clients, key)
		}
	}
}
