// Package cache stores raw API page responses so that re-running the
// collector or roster stages does not repeat every request.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a request URL. The credential
// query parameter is never part of the URL passed here, so keys do not
// leak the API key into cache paths.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "congrec:v1:" + hex.EncodeToString(sum[:])
}
