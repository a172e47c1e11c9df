package cache

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Cache holds rendered response snapshots for a fixed time. Writes to the
// underlying data never invalidate it; entries leave only through expiry or
// an explicit Clear.
type Cache struct {
	entries cmap.ConcurrentMap[string, entry]
	ttl     time.Duration
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: cmap.New[entry](),
		ttl:     ttl,
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		c.entries.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value []byte) {
	c.entries.Set(key, entry{value: value, expires: time.Now().Add(c.ttl)})
}

// Clear drops every snapshot so the next read recomputes.
func (c *Cache) Clear() {
	c.entries.Clear()
}
