package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCache() (*TTL[string, string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}
	c := NewTTL[string, string]()
	c.now = clock.now
	return c, clock
}

func TestTTL_GetSet(t *testing.T) {
	c, clock := newTestCache()

	_, ok := c.Get("hello-en")
	assert.False(t, ok)

	c.Set("hello-en", "hello", time.Hour)
	v, ok := c.Get("hello-en")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	clock.advance(59 * time.Minute)
	_, ok = c.Get("hello-en")
	assert.True(t, ok)

	clock.advance(time.Minute)
	_, ok = c.Get("hello-en")
	assert.False(t, ok, "entry expires exactly at its deadline")
	assert.Zero(t, c.Len(), "expired entry is dropped on read")

	assert.Equal(t, Stats{Hits: 2, Misses: 2, Entries: 0}, c.Stats())
}

func TestTTL_NonPositiveTTL(t *testing.T) {
	c, _ := newTestCache()
	c.Set("k", "v", 0)
	c.Set("k2", "v", -time.Second)
	assert.Zero(t, c.Len())
}

func TestTTL_Overwrite(t *testing.T) {
	c, clock := newTestCache()
	c.Set("k", "old", time.Minute)
	clock.advance(30 * time.Second)
	c.Set("k", "new", time.Minute)
	clock.advance(45 * time.Second)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestTTL_Sweep(t *testing.T) {
	c, clock := newTestCache()
	c.Set("short", "a", time.Minute)
	c.Set("long", "b", time.Hour)

	assert.Zero(t, c.Sweep())

	clock.advance(2 * time.Minute)
	assert.Equal(t, 1, c.Sweep())
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("long")
	assert.True(t, ok)
}

func TestTTL_Concurrent(t *testing.T) {
	c := NewTTL[string, int]()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			c.Set(key, i, time.Minute)
			c.Get(key)
			c.Sweep()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 20, c.Stats().Hits)
}
