// internal/cache/lru.go
//
// Small generic LRU used by the view engine to keep parsed theme sets.
//
// Notes
// -----
// • One mutex guards the list and the index; every method is safe for
//   concurrent use.
// • OnEvict runs under the lock, so it must not call back into the cache.
// • Oxford commas, two spaces after periods.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a fixed-capacity least-recently-used cache.
type LRU[K comparable, V any] struct {
	// OnEvict, when set, observes entries dropped for capacity.
	OnEvict func(K, V)

	mu    sync.Mutex
	limit int
	order *list.List // front = most recently used
	index map[K]*list.Element
}

type item[K comparable, V any] struct {
	key K
	val V
}

// New returns an LRU holding at most capacity entries.  Panics on
// capacity < 1.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	return &LRU[K, V]{
		limit: capacity,
		order: list.New(),
		index: make(map[K]*list.Element, capacity),
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*item[K, V]).val, true
}

// Add inserts or replaces key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Add(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.index[key]; ok {
		el.Value.(*item[K, V]).val = val
		c.order.MoveToFront(el)
		return
	}
	c.index[key] = c.order.PushFront(&item[K, V]{key: key, val: val})
	for c.order.Len() > c.limit {
		c.evictOldest()
	}
}

// Remove drops key if present.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.index[key]; ok {
		c.order.Remove(el)
		delete(c.index, key)
	}
}

// Purge drops every entry without calling OnEvict.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.index)
}

// Len reports current size.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *LRU[K, V]) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	it := c.order.Remove(el).(*item[K, V])
	delete(c.index, it.key)
	if c.OnEvict != nil {
		c.OnEvict(it.key, it.val)
	}
}
