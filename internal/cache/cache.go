// Package cache provides the process-local lookaside cache consulted before
// the durable store. Entries never expire and are never invalidated; the
// cache offers no consistency across instances.
package cache

import "sync"

// Cache maps emails to passwords for the lifetime of the process.
//
// The map itself is mutex-guarded so concurrent requests cannot corrupt it,
// but callers perform an unsynchronized check-then-fill: two concurrent
// registrations for the same new email may both miss and both generate a
// password. Last write wins, which matches the durable store's overwrite
// semantics.
type Cache struct {
	mu      sync.Mutex
	entries map[string]string
}

func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached password for email, if any.
func (c *Cache) Get(email string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	password, ok := c.entries[email]
	return password, ok
}

// Put stores the password for email, replacing any previous entry.
func (c *Cache) Put(email, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[email] = password
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
