package memo

import "sync"

// LastResultCachedMethod memoizes only the most recent call. A call with a
// different argument replaces the stored entry, so it holds at most one.
type LastResultCachedMethod[K comparable, V any] struct {
	fn   func(K) (V, error)
	keys keyChecker[K]

	mu    sync.Mutex
	valid bool
	key   K
	value V
}

// NewLastResultCachedMethod wraps fn.
func NewLastResultCachedMethod[K comparable, V any](fn func(K) (V, error)) *LastResultCachedMethod[K, V] {
	return &LastResultCachedMethod[K, V]{fn: fn, keys: newKeyChecker[K]()}
}

// Call returns the stored result when key matches the last call, and
// otherwise computes and stores a new one.
func (c *LastResultCachedMethod[K, V]) Call(key K) (V, error) {
	if err := c.keys.check(key); err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	if c.valid && c.key == key {
		v := c.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := c.fn(key)
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	c.valid, c.key, c.value = true, key, v
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops the stored entry.
func (c *LastResultCachedMethod[K, V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var (
		zeroK K
		zeroV V
	)
	c.valid, c.key, c.value = false, zeroK, zeroV
}

// Len returns 1 when an entry is stored and 0 otherwise.
func (c *LastResultCachedMethod[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid {
		return 1
	}
	return 0
}
