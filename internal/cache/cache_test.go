package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("key", "value")

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	current := time.Now()
	c := NewWithClock[int](time.Minute, func() time.Time { return current })
	defer c.Close()

	c.Set("n", 42)

	got, ok := c.Get("n")
	require.True(t, ok)
	assert.Equal(t, 42, got)

	current = current.Add(59 * time.Second)
	_, ok = c.Get("n")
	assert.True(t, ok, "still inside TTL")

	current = current.Add(2 * time.Second)
	_, ok = c.Get("n")
	assert.False(t, ok, "expired")
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Size())

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheOverwrite(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("key", "first")
	c.Set("key", "second")

	got, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, c.Size())
}
