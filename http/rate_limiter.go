package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"apartment-journey/domain"
	"apartment-journey/pkg/contextx"
	"apartment-journey/pkg/errcodes"
	"apartment-journey/pkg/httpx/reply"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	bucketIdleThreshold = time.Hour
	cleanupInterval     = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter gives every client IP a bucket of capacity requests that is
// refilled in full once per window.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	clients  map[string]*clientBucket
	now      func() time.Time
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		capacity: capacity,
		window:   window,
		clients:  make(map[string]*clientBucket),
		now:      time.Now,
	}
}

// Run evicts idle buckets until ctx is done.
func (l *RateLimiter) Run(ctx context.Context) error {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-ctx.Done():
			return nil
		}
	}
}

func (l *RateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, bucket := range l.clients {
		if now.Sub(bucket.lastRefill) > bucketIdleThreshold {
			delete(l.clients, key)
		}
	}
}

func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	bucket, ok := l.clients[key]
	if !ok {
		l.clients[key] = &clientBucket{tokens: l.capacity - 1, lastRefill: now}
		return l.capacity > 0
	}

	if now.Sub(bucket.lastRefill) >= l.window {
		bucket.tokens = l.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--

	return true
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.Allow(ip) {
			reply.Error(r.Context(), w, domain.NewError(errcodes.TooManyRequests, "rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
