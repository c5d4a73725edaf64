package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

// InMemoryResponseCache implements remotedata.ResponseCache with a map,
// for tests and examples that need cache behavior without a storage backend.
type InMemoryResponseCache struct {
	mu      sync.Mutex
	entries map[string]remotedata.CachedResponse
}

// NewInMemoryResponseCache creates an empty in-memory response cache.
func NewInMemoryResponseCache() *InMemoryResponseCache {
	return &InMemoryResponseCache{
		entries: make(map[string]remotedata.CachedResponse),
	}
}

// Save stores the cached response, replacing any existing entry for the same URL.
func (c *InMemoryResponseCache) Save(_ context.Context, cached remotedata.CachedResponse) error {
	if err := cached.Validate(); err != nil {
		return errors.Join(remotedata.ErrSavingCachedResponseFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cached.URL] = cached

	return nil
}

// Load returns the cached response for the URL or remotedata.ErrCacheMiss.
func (c *InMemoryResponseCache) Load(_ context.Context, url string) (remotedata.CachedResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached, exists := c.entries[url]
	if !exists {
		return remotedata.CachedResponse{}, remotedata.ErrCacheMiss
	}

	return cached, nil
}

// Delete removes the cached response for the URL.
func (c *InMemoryResponseCache) Delete(_ context.Context, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, url)

	return nil
}

// Len returns the number of cached entries.
func (c *InMemoryResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
