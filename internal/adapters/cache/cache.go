// Package cache provides the snapshot cache used by the service layer to
// short-circuit repeat chart requests. The computation engine never reads
// it; only the boundary does.
package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a computed snapshot stays valid in the cache.
const DefaultTTL = 24 * time.Hour

// Cache stores serialized snapshots keyed by a request hash.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores a value under key for the configured TTL.
	Set(ctx context.Context, key, value string) error
}
