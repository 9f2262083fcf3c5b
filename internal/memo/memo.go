// Package memo provides a small bounded string cache with FIFO eviction.
// It exists purely as a performance aid for repeated personalization of the
// same report fragments; a miss must always recompute an identical result.
package memo

// DefaultCapacity bounds a cache constructed with New when the caller passes
// a non-positive capacity.
const DefaultCapacity = 1000

// Cache maps input strings to computed outputs. It is owned by the caller and
// passed by reference wherever memoization is wanted; there is no package
// level instance. Not safe for concurrent use.
type Cache struct {
	capacity int
	entries  map[string]string
	order    []string
}

// New returns an empty cache holding at most capacity entries. The oldest
// inserted key is evicted first once the cache is full.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
	}
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.entries[key]
	return v, ok
}

// Put stores value under key, evicting the oldest entry when full. Storing an
// existing key overwrites its value without changing insertion order.
func (c *Cache) Put(key, value string) {
	if c == nil {
		return
	}
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}
