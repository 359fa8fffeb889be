package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetAndGet(t *testing.T) {
	c := NewCache(time.Minute)

	c.Set("key1", []byte("payload"))

	data, found := c.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("payload"), data)

	_, found = c.Get("absent")
	assert.False(t, found)
}

func TestCacheExpiration(t *testing.T) {
	c := NewCache(10 * time.Millisecond)

	c.Set("key1", []byte("payload"))
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("key1")
	assert.False(t, found)
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key1", []byte("a"))
	c.Set("key2", []byte("b"))

	c.Delete("key1")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheOverwrite(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key1", []byte("old"))
	c.Set("key1", []byte("new"))

	data, found := c.Get("key1")
	assert.True(t, found)
	assert.Equal(t, []byte("new"), data)
	assert.Equal(t, 1, c.Size())
}

func TestCacheStats(t *testing.T) {
	c := NewCache(time.Minute)
	c.Set("key1", []byte("a"))
	c.Set("key2", []byte("b"))

	stats := c.Stats()

	assert.Equal(t, 2, stats["total_items"])
	assert.Equal(t, 0, stats["expired_items"])
	assert.Equal(t, 2, stats["active_items"])
	assert.Equal(t, 60.0, stats["ttl_seconds"])
}

func TestGenerateKeyIsStable(t *testing.T) {
	c := NewCache(time.Minute)

	first := c.generateKey(`{"content":"same body"}`)
	second := c.generateKey(`{"content":"same body"}`)
	other := c.generateKey(`{"content":"different body"}`)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 32)
}
