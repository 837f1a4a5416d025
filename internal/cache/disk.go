package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Disk persists cache entries as JSON files under a single directory,
// one file per key. Expired entries are removed lazily on read.
type Disk struct {
	dir string
	ttl time.Duration
}

// NewDisk creates a disk cache rooted at dir with a default TTL.
func NewDisk(dir string, ttl time.Duration) *Disk {
	return &Disk{dir: dir, ttl: ttl}
}

type diskEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (d *Disk) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

func (d *Disk) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, false
	}

	var entry diskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(d.path(key))
		return nil, false
	}
	return entry.Data, true
}

func (d *Disk) Set(key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = d.ttl
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}

	entry := diskEntry{Data: value, ExpiresAt: time.Now().Add(ttl)}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return os.WriteFile(d.path(key), raw, 0o644)
}

func (d *Disk) Delete(key string) error {
	err := os.Remove(d.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (d *Disk) Clear() error {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			_ = os.Remove(filepath.Join(d.dir, e.Name()))
		}
	}
	return nil
}
