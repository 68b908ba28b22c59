package cache

import (
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
)

type item[V any] struct {
	value     *V
	expiresAt time.Time
}

// Cache is a sliding-expiry map: every successful Get pushes the deadline of
// the entry back by ttl.
type Cache[K comparable, V any] struct {
	items map[K]*item[V]
	ttl   time.Duration
	clock clock.Clock
	mutex sync.Mutex
}

func New[K comparable, V any](ttl time.Duration, clk clock.Clock) *Cache[K, V] {
	if clk == nil {
		clk = clock.NewClock()
	}

	return &Cache[K, V]{
		items: make(map[K]*item[V]),
		ttl:   ttl,
		clock: clk,
	}
}

// Get returns the value for key, or nil when it is missing or expired.
func (c *Cache[K, V]) Get(key K) *V {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.clock.Now()

	it, found := c.items[key]
	if !found {
		return nil
	}
	if now.After(it.expiresAt) {
		delete(c.items, key)
		return nil
	}
	it.expiresAt = now.Add(c.ttl)

	return it.value
}

func (c *Cache[K, V]) Set(key K, value *V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = &item[V]{
		value:     value,
		expiresAt: c.clock.Now().Add(c.ttl),
	}
}

func (c *Cache[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// DeleteExpired drops every expired entry and reports how many were removed.
func (c *Cache[K, V]) DeleteExpired() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.clock.Now()
	removed := 0
	for k, it := range c.items {
		if now.After(it.expiresAt) {
			delete(c.items, k)
			removed++
		}
	}

	return removed
}

func (c *Cache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.items)
}
