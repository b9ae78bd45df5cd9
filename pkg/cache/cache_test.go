package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLRU(capacity int, ttl time.Duration) (*LRU[string, []byte], *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)}
	c := NewLRU[string, []byte](capacity, ttl)
	c.now = clock.now
	return c, clock
}

func TestLRU(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(t *testing.T, c *LRU[string, []byte], clock *fakeClock)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, []byte], clock *fakeClock) {
				c.Set("ORD-1", []byte("%PDF-1"))
				clock.advance(30 * time.Second)

				v, ok := c.Get("ORD-1")
				require.True(t, ok)
				assert.Equal(t, "%PDF-1", string(v))
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, []byte], clock *fakeClock) {
				c.Set("ORD-1", []byte("%PDF-1"))
				clock.advance(2 * time.Minute)

				_, ok := c.Get("ORD-1")
				assert.False(t, ok)
				assert.Equal(t, 0, c.Len())
			},
		},
		{
			name:     "evicts least recently used",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, []byte], _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))

				_, ok := c.Get("b")
				assert.False(t, ok)
				_, ok = c.Get("a")
				assert.True(t, ok)
				_, ok = c.Get("c")
				assert.True(t, ok)
			},
		},
		{
			name:     "update resets TTL",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, []byte], clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(45 * time.Second)
				c.Set("a", []byte("2"))
				clock.advance(45 * time.Second)

				v, ok := c.Get("a")
				require.True(t, ok)
				assert.Equal(t, "2", string(v))
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, []byte], _ *fakeClock) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")

				_, ok := c.Get("a")
				assert.False(t, ok)
			},
		},
		{
			name:     "zero TTL never expires",
			capacity: 1,
			ttl:      0,
			actions: func(t *testing.T, c *LRU[string, []byte], clock *fakeClock) {
				c.Set("a", []byte("1"))
				clock.advance(24 * time.Hour)

				_, ok := c.Get("a")
				assert.True(t, ok)
			},
		},
		{
			name:     "purge removes expired",
			capacity: 3,
			ttl:      time.Minute,
			actions: func(t *testing.T, c *LRU[string, []byte], clock *fakeClock) {
				c.Set("old", []byte("1"))
				clock.advance(50 * time.Second)
				c.Set("new", []byte("2"))
				clock.advance(20 * time.Second)

				c.purge()

				assert.Equal(t, 1, c.Len())
				_, ok := c.Get("new")
				assert.True(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, clock := newTestLRU(tt.capacity, tt.ttl)
			tt.actions(t, c, clock)
		})
	}
}

func TestLRU_StartStopsWithContext(t *testing.T) {
	c := NewLRU[string, int](1, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Start(ctx))
	cancel()

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
