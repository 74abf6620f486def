package cache

import (
	"sync"
	"time"
)

// InMemoryCache keeps entries in process memory. Used in tests and as the
// fallback when no cache directory is configured.
type InMemoryCache struct {
	mu      sync.RWMutex
	data    map[string]string
	expires map[string]time.Time
}

var _ Cache = (*InMemoryCache)(nil)

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		data:    make(map[string]string),
		expires: make(map[string]time.Time),
	}
}

func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	value, ok := c.data[key]
	expiry, hasExpiry := c.expires[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if hasExpiry && time.Now().After(expiry) {
		c.mu.Lock()
		delete(c.data, key)
		delete(c.expires, key)
		c.mu.Unlock()
		return "", false
	}
	return value, true
}

func (c *InMemoryCache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	delete(c.expires, key)
	return nil
}

func (c *InMemoryCache) SetTTL(key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.expires[key] = time.Now().Add(ttl)
	return nil
}
