// Package ring provides a generic fixed-capacity circular cache that keeps
// the most recent values pushed into it, overwriting the oldest once full.
//
// The backing storage is a single contiguous slice allocated at construction;
// Push, Get, and Clear never allocate. A Cache is not internally
// synchronized: it has a single logical owner, and callers that share one
// across goroutines must guard it themselves (see internal/timing.Timings).
package ring

import (
	"errors"
	"iter"
)

// ErrInvalidCapacity is returned by New when the requested capacity is
// less than one.
var ErrInvalidCapacity = errors.New("ring: capacity must be at least 1")

// Cache is a fixed-capacity circular cache of the most recent values.
// The zero value is not usable; construct with New.
type Cache[T any] struct {
	items []T
	head  int // next write slot
	count int // saturates at cap(items)
}

// New creates a Cache that retains the last capacity values pushed.
func New[T any](capacity int) (*Cache[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[T]{
		items: make([]T, capacity),
	}, nil
}

// Push stores v, evicting the oldest value if the cache is full.
func (c *Cache[T]) Push(v T) {
	c.items[c.head] = v
	c.head = (c.head + 1) % len(c.items)
	if c.count < len(c.items) {
		c.count++
	}
}

// Get returns the value at logical index i, where 0 is the oldest retained
// value and Len()-1 the newest. The second return is false if i is out of
// range. The returned value is a copy.
func (c *Cache[T]) Get(i int) (T, bool) {
	if i < 0 || i >= c.count {
		var zero T
		return zero, false
	}
	return c.items[(c.oldest()+i)%len(c.items)], true
}

// Last returns the most recently pushed value, or false if the cache is empty.
func (c *Cache[T]) Last() (T, bool) {
	return c.Get(c.count - 1)
}

// Len returns the number of values currently retained.
func (c *Cache[T]) Len() int { return c.count }

// Cap returns the fixed capacity.
func (c *Cache[T]) Cap() int { return len(c.items) }

// Full reports whether the next Push will evict.
func (c *Cache[T]) Full() bool { return c.count == len(c.items) }

// Clear logically empties the cache. The backing storage is not zeroed;
// stale slots are unreachable until overwritten by a later Push.
func (c *Cache[T]) Clear() {
	c.head = 0
	c.count = 0
}

// All returns a copy of the retained values, oldest first.
func (c *Cache[T]) All() []T {
	out := make([]T, c.count)
	start := c.oldest()
	for i := 0; i < c.count; i++ {
		out[i] = c.items[(start+i)%len(c.items)]
	}
	return out
}

// Values returns an iterator over the retained values, oldest first.
// Each call yields an independent sequence; iterating does not mutate
// the cache.
func (c *Cache[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		start := c.oldest()
		for i := 0; i < c.count; i++ {
			if !yield(c.items[(start+i)%len(c.items)]) {
				return
			}
		}
	}
}

// oldest returns the physical slot of the oldest retained value.
func (c *Cache[T]) oldest() int {
	return (c.head - c.count + len(c.items)) % len(c.items)
}
