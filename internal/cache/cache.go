// Package cache stores extracted page text between runs so repeat analyses
// of the same file skip PDF parsing and OCR.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for the page-extraction cache
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from file contents. Hashing the bytes rather than
// the path means a re-downloaded or edited document never serves stale
// pages.
func Key(data []byte) string {
	sum := sha256.Sum256(data)
	return "actlens:pages:v1:" + hex.EncodeToString(sum[:])
}
