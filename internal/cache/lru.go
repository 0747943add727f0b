// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package cache

import (
	"context"
	"sync"
	"time"
)

// lruEntry is a node in the LRU list.
type lruEntry struct {
	key       string
	value     []byte
	prev      *lruEntry
	next      *lruEntry
	expiresAt time.Time
}

// LRUCache implements a thread-safe Least Recently Used cache with TTL support.
// Get, Set and eviction are O(1): a hashmap indexes a doubly-linked list
// ordered by recency.
type LRUCache struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration

	items map[string]*lruEntry

	// head.next is the most recently used, tail.prev the least
	head *lruEntry
	tail *lruEntry

	hits      int64
	misses    int64
	evictions int64
}

// NewLRUCache creates a new LRU cache with the specified capacity and default TTL.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	if capacity <= 0 {
		capacity = 1000
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	c := &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruEntry, capacity),
		head:     &lruEntry{},
		tail:     &lruEntry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get retrieves an entry and marks it most recently used.
func (c *LRUCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[key]
	if !exists {
		c.misses++
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.misses++
		return nil, false, nil
	}

	c.moveToFront(entry)
	c.hits++
	return entry.value, true, nil
}

// Set adds or replaces an entry, evicting the least recently used entry when
// the cache is full.
func (c *LRUCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(ttl)
	if entry, exists := c.items[key]; exists {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return nil
	}

	entry := &lruEntry{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
	return nil
}

// Delete removes an entry from the cache.
func (c *LRUCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.items[key]; exists {
		c.removeEntry(entry)
	}
	return nil
}

// Ping always succeeds.
func (c *LRUCache) Ping(context.Context) error { return nil }

// Close clears the cache.
func (c *LRUCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*lruEntry, c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	return nil
}

// Len returns the current number of entries in the cache.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// CleanupExpired removes all expired entries from the cache.
// Returns the number of entries removed.
func (c *LRUCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			removed++
		}
		entry = prev
	}
	return removed
}

// LRUStats is a snapshot of cache counters.
type LRUStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// Stats returns cache hit/miss statistics.
func (c *LRUCache) Stats() LRUStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return LRUStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Internal methods (must be called with lock held)

func (c *LRUCache) addToFront(entry *lruEntry) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRUCache) moveToFront(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRUCache) removeEntry(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *LRUCache) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	c.evictions++
}

var _ Store = (*LRUCache)(nil)
