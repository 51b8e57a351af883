package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterRegistry keeps one token bucket per key.
type limiterRegistry struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter

	every rate.Limit
	burst int

	// sweepAt is the registry size that triggers eviction of idle limiters.
	sweepAt int
}

const defaultSweepAt = 10000

func newLimiterRegistry(interval time.Duration, burst int) *limiterRegistry {
	return &limiterRegistry{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(interval),
		burst:    burst,
		sweepAt:  defaultSweepAt,
	}
}

// Allow reports whether one more event for key fits in its bucket.
func (r *limiterRegistry) Allow(key string, now time.Time) bool {
	return r.getOrCreate(key, now).AllowN(now, 1)
}

func (r *limiterRegistry) getOrCreate(key string, now time.Time) *rate.Limiter {
	r.mu.RLock()
	limiter, exists := r.limiters[key]
	r.mu.RUnlock()

	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// double check after taking the write lock
	if limiter, exists = r.limiters[key]; exists {
		return limiter
	}

	if len(r.limiters) >= r.sweepAt {
		r.sweep(now)
	}

	limiter = rate.NewLimiter(r.every, r.burst)
	r.limiters[key] = limiter

	return limiter
}

// sweep drops limiters whose bucket has refilled; they behave exactly like a
// new one. Caller must hold the write lock.
func (r *limiterRegistry) sweep(now time.Time) {
	for key, limiter := range r.limiters {
		if limiter.TokensAt(now) >= float64(r.burst) {
			delete(r.limiters, key)
		}
	}
}

func (r *limiterRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.limiters)
}
