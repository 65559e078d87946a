package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = (*RedisCache)(nil)
)

func TestMemoryCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer func() { require.NoError(t, c.Close()) }()

	require.NoError(t, c.Set(ctx, "pref:test:iconSize", "32", time.Minute))

	v, err := c.Get(ctx, "pref:test:iconSize")
	require.NoError(t, err)
	assert.Equal(t, "32", v)

	_, err = c.Get(ctx, "pref:test:missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Delete(ctx, "pref:test:iconSize"))
	_, err = c.Get(ctx, "pref:test:iconSize")
	assert.ErrorIs(t, err, ErrMiss)

	assert.NoError(t, c.Delete(ctx, "pref:test:never-set"))
}

func TestMemoryCache_Expiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer func() { require.NoError(t, c.Close()) }()

	require.NoError(t, c.Set(ctx, "short", "v", 10*time.Millisecond))
	require.NoError(t, c.Set(ctx, "forever", "v", 0))

	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrMiss)

	v, err := c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestMemoryCache_GCRemovesExpired(t *testing.T) {
	ctx := context.Background()
	c := newMemoryCache(5 * time.Millisecond)
	defer func() { require.NoError(t, c.Close()) }()

	require.NoError(t, c.Set(ctx, "short", "v", time.Millisecond))
	require.NoError(t, c.Set(ctx, "long", "v", time.Hour))

	assert.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMemoryCache_Close(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer func() { require.NoError(t, c.Close()) }()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Set(ctx, "k", "v", time.Minute)
				_, _ = c.Get(ctx, "k")
				_ = c.Delete(ctx, "k")
			}
		}()
	}
	wg.Wait()
}
