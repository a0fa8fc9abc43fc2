package contact

import (
	"sync"
	"time"

	"github.com/kalakshetraodisha/website/internal/platform/timeouts"
	"golang.org/x/time/rate"
)

// Default submission budget per client.
const (
	DefaultRate  = rate.Limit(1.0 / 12)
	DefaultBurst = 5
)

// Limiter applies a token bucket per client key. Buckets idle longer than
// the idle window are evicted.
type Limiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	now       func() time.Time
	clients   map[string]*clientBucket
	lastSweep time.Time
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter builds a limiter. Non-positive values fall back to the defaults.
func NewLimiter(limit rate.Limit, burst int) *Limiter {
	if limit <= 0 {
		limit = DefaultRate
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Limiter{
		limit:   limit,
		burst:   burst,
		idle:    timeouts.RateLimiterIdle,
		now:     time.Now,
		clients: make(map[string]*clientBucket),
	}
}

// Allow consumes one token for key. When the bucket is empty it reports the
// wait before the next token.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)
	bucket, ok := l.clients[key]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = bucket
	}
	bucket.lastSeen = now

	reservation := bucket.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return false, l.idle
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for key, bucket := range l.clients {
		if now.Sub(bucket.lastSeen) >= l.idle {
			delete(l.clients, key)
		}
	}
}
