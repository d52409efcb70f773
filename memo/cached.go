package memo

import "sync"

// CachedMethod memoizes a function by its argument. The cache grows without
// bound until Invalidate or Forget is called.
type CachedMethod[K comparable, V any] struct {
	fn   func(K) (V, error)
	keys keyChecker[K]

	mu    sync.Mutex
	cache map[K]V
}

// NewCachedMethod wraps fn.
func NewCachedMethod[K comparable, V any](fn func(K) (V, error)) *CachedMethod[K, V] {
	return &CachedMethod[K, V]{
		fn:    fn,
		keys:  newKeyChecker[K](),
		cache: make(map[K]V),
	}
}

// Call returns the cached result for key, computing and storing it on a miss.
func (c *CachedMethod[K, V]) Call(key K) (V, error) {
	if err := c.keys.check(key); err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	v, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return v, nil
	}

	v, err := c.fn(key)
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	c.cache[key] = v
	c.mu.Unlock()
	return v, nil
}

// Forget drops the entry for key.
func (c *CachedMethod[K, V]) Forget(key K) {
	if c.keys.check(key) != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, key)
}

// Invalidate drops every entry.
func (c *CachedMethod[K, V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.cache)
}

// Len returns the number of cached entries.
func (c *CachedMethod[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}
