package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordchain/pkg/cache"
)

func TestLRU_GetPut(t *testing.T) {
	t.Parallel()
	c := cache.NewLRU[string, int](2, 0)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Put("a", 1)
	c.Put("b", 2)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// a was used last, so b is evicted
	c.Put("c", 3)
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
}

func TestLRU_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	c := cache.NewLRU[string, string](4, time.Minute).WithClock(func() time.Time { return now })

	c.Put("k", "v")
	now = now.Add(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestLRU_PutRefreshesExpiry(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	c := cache.NewLRU[string, string](4, time.Minute).WithClock(func() time.Time { return now })

	c.Put("k", "v1")
	now = now.Add(50 * time.Second)
	c.Put("k", "v2")
	now = now.Add(50 * time.Second)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestLRU_Remove(t *testing.T) {
	t.Parallel()
	c := cache.NewLRU[string, int](2, 0)

	c.Put("a", 1)
	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 0, c.Len())
}

func TestLRU_PanicsOnZeroCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { cache.NewLRU[string, int](0, 0) })
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()
	c := cache.NewLRU[string, int](64, time.Minute)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 200 {
				key := fmt.Sprintf("%d-%d", i, j%100)
				c.Put(key, j)
				c.Get(key)
				if j%7 == 0 {
					c.Remove(key)
				}
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}
