// Package cache stores rendered badges keyed by a hash of their descriptor.
//
// Rendering is deterministic, so a badge descriptor together with the font
// set it was measured with fully determines the output. Keys are produced by
// a [Keyer]; [ScopedKeyer] namespaces keys per font set.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
