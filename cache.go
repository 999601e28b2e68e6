package pageask

import "sync"

// ContextCache caches PageContext snapshots by URL so the UI collaborator
// only re-extracts when the user navigates. It replaces ambient process
// state with an explicit object passed by reference to the retrieval
// entry point; navigation events invalidate the stale URL.
type ContextCache struct {
	mu      sync.RWMutex
	entries map[string]*PageContext
}

// NewContextCache returns an empty cache.
func NewContextCache() *ContextCache {
	return &ContextCache{entries: make(map[string]*PageContext)}
}

// Get returns the cached context for a URL.
func (c *ContextCache) Get(url string) (*PageContext, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	page, ok := c.entries[url]
	return page, ok
}

// Put stores the context for a URL, replacing any previous snapshot.
func (c *ContextCache) Put(url string, page *PageContext) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = page
}

// Invalidate removes the cached context for a URL.
func (c *ContextCache) Invalidate(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, url)
}

// Reset drops all cached contexts.
func (c *ContextCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*PageContext)
}

// Len returns the number of cached contexts.
func (c *ContextCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
