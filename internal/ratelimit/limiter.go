// Package ratelimit is a per-key token-bucket limiter with time-bounded
// entries, used to throttle the subscription endpoint per client IP. It is
// constructed and injected rather than kept as ambient module state, so its
// eviction behavior is testable.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// KeyLimiter rate-limits per key (client IP, hostname, ...). Entries idle
// longer than ttl are evicted so the map stays bounded.
type KeyLimiter struct {
	mu  sync.Mutex
	m   map[string]*entry
	r   rate.Limit
	b   int
	ttl time.Duration
	now func() time.Time
}

func NewKeyLimiter(perMinute float64, burst int, ttl time.Duration) *KeyLimiter {
	return &KeyLimiter{
		m:   make(map[string]*entry),
		r:   rate.Limit(perMinute / 60),
		b:   burst,
		ttl: ttl,
		now: time.Now,
	}
}

// Allow reports whether key may proceed right now, consuming one token if so.
func (kl *KeyLimiter) Allow(key string) bool {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	now := kl.now()
	kl.evictLocked(now)

	e, ok := kl.m[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(kl.r, kl.b)}
		kl.m[key] = e
	}
	e.lastSeen = now
	return e.lim.Allow()
}

// Len is exposed for tests and the health endpoint.
func (kl *KeyLimiter) Len() int {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	return len(kl.m)
}

func (kl *KeyLimiter) evictLocked(now time.Time) {
	for k, e := range kl.m {
		if now.Sub(e.lastSeen) > kl.ttl {
			delete(kl.m, k)
		}
	}
}
