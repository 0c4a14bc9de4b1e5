// internal/middleware/ratelimit.go
package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter allows limit requests per key in each fixed window.
type RateLimiter struct {
	limit   int
	window  time.Duration
	now     func() time.Time
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count int
	reset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// WithClock replaces the limiter's time source.
func (rl *RateLimiter) WithClock(now func() time.Time) *RateLimiter {
	rl.now = now
	return rl
}

// Allow records a hit for key and reports whether it is within the limit, along with the
// time the current window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || !now.Before(b.reset) {
		rl.sweep(now)
		b = &bucket{count: 1, reset: now.Add(rl.window)}
		rl.buckets[key] = b
		return true, b.reset
	}

	if b.count >= rl.limit {
		return false, b.reset
	}

	b.count++
	return true, b.reset
}

// sweep drops expired buckets. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, b := range rl.buckets {
		if !now.Before(b.reset) {
			delete(rl.buckets, k)
		}
	}
}

// ClientIP is the first X-Forwarded-For hop, falling back to the connection address.
func ClientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, reset := rl.Allow(ClientIP(r))
		if !allowed {
			retry := int(reset.Sub(rl.now()).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			respondWithError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}
