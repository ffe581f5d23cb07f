package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyLimiter_BurstThenDeny(t *testing.T) {
	kl := NewKeyLimiter(60, 3, time.Hour)

	for i := 0; i < 3; i++ {
		assert.True(t, kl.Allow("1.2.3.4"), "request %d should be within burst", i)
	}
	assert.False(t, kl.Allow("1.2.3.4"))

	// other keys have their own bucket
	assert.True(t, kl.Allow("5.6.7.8"))
}

func TestKeyLimiter_EvictsIdleEntries(t *testing.T) {
	kl := NewKeyLimiter(60, 1, time.Minute)

	now := time.Unix(1000, 0)
	kl.now = func() time.Time { return now }

	kl.Allow("a")
	kl.Allow("b")
	assert.Equal(t, 2, kl.Len())

	// "a" stays active, "b" goes idle past the ttl
	now = now.Add(30 * time.Second)
	kl.Allow("a")

	now = now.Add(45 * time.Second)
	kl.Allow("c")
	assert.Equal(t, 2, kl.Len()) // a and c; b evicted
}
