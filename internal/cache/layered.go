package cache

import "time"

// Layered combines the memory and disk caches: reads check memory
// first and promote disk hits, writes go to both layers.
type Layered struct {
	memory Cache
	disk   Cache
}

// NewLayered creates a two-layer cache.
func NewLayered(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *Layered {
	return &Layered{
		memory: NewMemory(memoryTTL),
		disk:   NewDisk(diskDir, diskTTL),
	}
}

func (l *Layered) Get(key string) ([]byte, bool) {
	if v, ok := l.memory.Get(key); ok {
		return v, true
	}
	if v, ok := l.disk.Get(key); ok {
		_ = l.memory.Set(key, v, 0)
		return v, true
	}
	return nil, false
}

func (l *Layered) Set(key string, value []byte, ttl time.Duration) error {
	if err := l.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return l.disk.Set(key, value, ttl)
}

func (l *Layered) Delete(key string) error {
	if err := l.memory.Delete(key); err != nil {
		return err
	}
	return l.disk.Delete(key)
}

func (l *Layered) Clear() error {
	if err := l.memory.Clear(); err != nil {
		return err
	}
	return l.disk.Clear()
}
