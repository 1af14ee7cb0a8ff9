package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsPutValue(t *testing.T) {
	c := New(30*time.Minute, 8)
	c.Put("pokemon/pikachu", []byte(`{"id":25}`))

	got, ok := c.Get("pokemon/pikachu")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"id":25}`), got)
}

func TestExpiredEntryIsMiss(t *testing.T) {
	now := time.Unix(1000, 0)
	c := New(30*time.Minute, 8, WithClock(func() time.Time { return now }))

	c.Put("k", []byte("v"))

	now = now.Add(29 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry within ttl should hit")

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry past ttl should miss")

	// 过期条目不清理，但会被下一次写入覆盖并重新计时
	assert.Equal(t, 1, c.Size())
	c.Put("k", []byte("v2"))
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), got)
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(time.Hour, 3)
	for i := 0; i < 3; i++ {
		c.Put(fmt.Sprintf("k%d", i), []byte{byte(i)})
	}

	// 触碰 k0，使 k1 成为最旧条目
	_, ok := c.Get("k0")
	require.True(t, ok)

	c.Put("k3", []byte{3})

	assert.Equal(t, 3, c.Size())
	_, ok = c.Get("k1")
	assert.False(t, ok, "k1 should have been evicted")
	_, ok = c.Get("k0")
	assert.True(t, ok)
	_, ok = c.Get("k3")
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	c := New(time.Hour, 8)
	c.Put("a", []byte("1"))
	c.Put("b", []byte("2"))
	c.Clear()

	assert.Equal(t, 0, c.Size())
	_, ok := c.Get("a")
	assert.False(t, ok)
}
