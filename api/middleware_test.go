package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/config"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 10, Burst: 20})
	rl.now = clock.Now
	require.Equal(t, clientIdleTTL, rl.idleTTL)

	for i := 0; i < 100; i++ {
		rl.limiter(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Equal(t, 100, rl.Len())

	clock.Advance(clientIdleTTL / 2)
	rl.limiter("10.0.0.1")
	assert.Equal(t, 100, rl.Len())

	// only the client seen half a ttl ago survives, plus the newcomer
	clock.Advance(clientIdleTTL / 2)
	rl.limiter("192.168.0.1")
	assert.Equal(t, 2, rl.Len())
	assert.Contains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "192.168.0.1")
}

func TestRateLimiterKeepsClientsUntilRefilled(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})
	rl.now = clock.Now
	assert.InDelta(t, 1000, rl.idleTTL.Seconds(), 1e-6)

	require.True(t, rl.limiter("10.0.0.1").Allow())

	// past the default ttl but before a token is back, the bucket stays empty
	clock.Advance(clientIdleTTL + time.Second)
	rl.limiter("10.0.0.2")
	assert.Equal(t, 2, rl.Len())
}
