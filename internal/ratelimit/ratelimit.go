// Package ratelimit provides keyed request limiters.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type Limiter interface {
	// Allow consumes one unit for key and reports whether it was available.
	Allow(ctx context.Context, key string) (bool, error)
}

// In-memory token bucket per key.
// Not shared across instances; use RedisLimiter when running more than one.
type tokenBucket struct {
	tokens float64
	last   time.Time
}

type TokenBucket struct {
	buckets map[string]*tokenBucket
	mu      sync.Mutex
	rate    float64
	burst   float64
	now     func() time.Time
}

// NewTokenBucket allows burst requests per key, refilled evenly over window.
func NewTokenBucket(burst int, window time.Duration) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &TokenBucket{
		buckets: make(map[string]*tokenBucket),
		rate:    float64(burst) / window.Seconds(),
		burst:   float64(burst),
		now:     time.Now,
	}
}

func (s *TokenBucket) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		s.buckets[key] = &tokenBucket{tokens: s.burst - 1, last: now}
		return true, nil
	}
	elapsed := now.Sub(b.last).Seconds()
	b.tokens += elapsed * s.rate
	if b.tokens > s.burst {
		b.tokens = s.burst
	}
	b.last = now
	if b.tokens >= 1 {
		b.tokens -= 1
		return true, nil
	}
	return false, nil
}

// Sweep drops buckets that have been idle long enough to be full again.
func (s *TokenBucket) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, b := range s.buckets {
		if b.tokens+now.Sub(b.last).Seconds()*s.rate >= s.burst {
			delete(s.buckets, k)
		}
	}
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *TokenBucket) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
