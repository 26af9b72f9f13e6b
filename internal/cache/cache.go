// Package cache provides the layered cache backing the location-search
// client: a short-lived memory layer over a longer-lived disk layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a versioned cache key from an arbitrary string (typically
// "search:<query>"). Hashing keeps Telugu queries filesystem-safe.
func Key(s string) string {
	hash := sha256.Sum256([]byte(s))
	return "dateline:v1:" + hex.EncodeToString(hash[:])
}
