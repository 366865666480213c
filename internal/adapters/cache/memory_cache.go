package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/karthikv/spam-detector/internal/core"
)

// MemoryCache is an in-memory implementation of the CacheRepository
// interface, keyed by the exact message text. Expired entries are
// reaped in the background by the underlying cache.
type MemoryCache struct {
	entries *gocache.Cache
	logger  *zap.Logger
}

// NewMemoryCache creates a new in-memory cache with the given entry TTL
// and cleanup frequency
func NewMemoryCache(ttl, cleanupFreq time.Duration, logger *zap.Logger) *MemoryCache {
	return &MemoryCache{
		entries: gocache.New(ttl, cleanupFreq),
		logger:  logger,
	}
}

// Get retrieves a cached result for a message
func (c *MemoryCache) Get(message string) (*core.DetectionResult, bool) {
	v, ok := c.entries.Get(message)
	if !ok {
		return nil, false
	}

	result, ok := v.(core.DetectionResult)
	if !ok {
		return nil, false
	}
	return &result, true
}

// Set stores a result for a message using the cache's default TTL
func (c *MemoryCache) Set(message string, result core.DetectionResult) {
	c.entries.Set(message, result, gocache.DefaultExpiration)
}

// Flush discards all cached entries
func (c *MemoryCache) Flush() {
	c.entries.Flush()
}

// Len returns the number of entries currently cached, including any not
// yet reaped expired entries
func (c *MemoryCache) Len() int {
	return c.entries.ItemCount()
}
