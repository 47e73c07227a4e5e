// Cinematch - Movie Recommendations with Poster Previews
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import (
	"context"
	"sync"
	"time"
)

// lruEntry is a node in the LRU list.
type lruEntry struct {
	key       int64
	value     []byte
	prev      *lruEntry
	next      *lruEntry
	expiresAt time.Time
}

// LRUStore is a thread-safe in-memory PosterStore with LRU eviction and TTL.
//
// Get, Put and eviction are O(1): a doubly-linked list keeps recency order
// and a map gives direct access to nodes.
type LRUStore struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration

	items map[int64]*lruEntry

	// head.next is the most recently used, tail.prev the least
	head *lruEntry
	tail *lruEntry

	hits   int64
	misses int64

	now func() time.Time
}

// NewLRUStore creates an LRU store holding at most capacity posters.
func NewLRUStore(capacity int, ttl time.Duration) *LRUStore {
	if capacity <= 0 {
		capacity = 256
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	c := &LRUStore{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int64]*lruEntry, capacity),
		head:     &lruEntry{},
		tail:     &lruEntry{},
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves poster bytes. Found entries become most recently used.
func (c *LRUStore) Get(_ context.Context, movieID int64) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.items[movieID]
	if !exists {
		c.misses++
		return nil, false, nil
	}

	if c.now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.misses++
		return nil, false, nil
	}

	c.moveToFront(entry)
	c.hits++
	return entry.value, true, nil
}

// Put adds or replaces poster bytes, evicting the least recently used
// entry when over capacity.
func (c *LRUStore) Put(_ context.Context, movieID int64, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyValue
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)

	if entry, exists := c.items[movieID]; exists {
		entry.value = data
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return nil
	}

	entry := &lruEntry{key: movieID, value: data, expiresAt: expiresAt}
	c.addToFront(entry)
	c.items[movieID] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
	return nil
}

// Close drops all entries.
func (c *LRUStore) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int64]*lruEntry, c.capacity)
	c.head.next = c.tail
	c.tail.prev = c.head
	return nil
}

// Len returns the current number of entries.
func (c *LRUStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns hit/miss counters and the current size.
func (c *LRUStore) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

// Internal methods (must be called with lock held)

func (c *LRUStore) addToFront(entry *lruEntry) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRUStore) moveToFront(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRUStore) removeEntry(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *LRUStore) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
}
