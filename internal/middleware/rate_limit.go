package middleware

import (
	"sync"
	"time"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// defaultIdleTTL is how long a key may go unused before its bucket is
// dropped. It is raised to the full refill time when that is longer.
const defaultIdleTTL = 10 * time.Minute

// KeyedRateLimiter hands out one token bucket per key (client IP or account).
// Buckets idle for longer than idleTTL are swept, at most once per idleTTL.
type KeyedRateLimiter struct {
	limiters  map[string]*limiterEntry
	mu        sync.Mutex
	r         rate.Limit // requests per second
	b         int        // burst
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	ttl := defaultIdleTTL
	// an evicted bucket comes back full, so never drop one still refilling
	if r > 0 {
		if refill := time.Duration(float64(b) / float64(r) * float64(time.Second)); refill > ttl {
			ttl = refill
		}
	}
	return &KeyedRateLimiter{
		limiters: make(map[string]*limiterEntry),
		r:        r,
		b:        b,
		idleTTL:  ttl,
		now:      time.Now,
	}
}

func (k *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.sweep(now)

	entry, exists := k.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// Len reports how many keys currently hold a bucket.
func (k *KeyedRateLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// sweep must be called with mu held.
func (k *KeyedRateLimiter) sweep(now time.Time) {
	if now.Sub(k.lastSweep) < k.idleTTL {
		return
	}
	k.lastSweep = now
	for key, entry := range k.limiters {
		if now.Sub(entry.lastSeen) >= k.idleTTL {
			delete(k.limiters, key)
		}
	}
}

func tooManyRequests(c *gin.Context) {
	e := apperror.ErrTooManyRequests
	response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
	c.Abort()
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}
