package view

import "sync"

// ListingCache keeps rendered collection payloads keyed by their canonical
// path, so repeated dashboard loads skip the database until a mutation
// invalidates the entry.
type ListingCache struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewListingCache() *ListingCache {
	return &ListingCache{m: make(map[string][]byte)}
}

func (c *ListingCache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	body, ok := c.m[path]
	return body, ok
}

func (c *ListingCache) Put(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[path] = body
}

// Invalidate drops the cached payload for path. Invalidating a path that has
// nothing cached is a no-op.
func (c *ListingCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, path)
}
