package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should pass within burst", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestLimiterTracksClientsSeparately(t *testing.T) {
	l := NewLimiter(1, 1)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// a different client gets its own bucket
	assert.True(t, l.Allow("10.0.0.2"))
	assert.Equal(t, 2, l.ActiveClients())
}

func TestLimiterHighRateNeverBlocks(t *testing.T) {
	l := NewLimiter(1000, 1000)

	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
}
