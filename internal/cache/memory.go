package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is the in-process cache layer. Entries expire after their
// TTL and are swept on a fixed interval.
type Memory struct {
	c *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL.
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{c: gocache.New(defaultTTL, 10*time.Minute)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.c.Set(key, value, ttl)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.c.Delete(key)
	return nil
}

func (m *Memory) Clear() error {
	m.c.Flush()
	return nil
}
