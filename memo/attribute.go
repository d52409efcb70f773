package memo

import (
	"reflect"
	"sync"

	"github.com/jmgilman/foundation/errors"
)

// AttributeBasedCachedMethod memoizes a function of its owner's state. The
// cache key is the current value of a set of watched attributes, read from
// the owner on every call: exported fields, or zero-argument getter methods
// returning one value. When the watched attributes change, the next call
// misses and recomputes.
//
// Snapshots are compared with reflect.DeepEqual but not deep-copied, so a
// slice or map mutated in place is only noticed after Invalidate. If a
// watched attribute cannot be read the call bypasses the cache and simply
// computes the result.
type AttributeBasedCachedMethod[V any] struct {
	owner      reflect.Value
	attrs      []string
	fn         func() (V, error)
	maxEntries int

	mu      sync.Mutex
	entries []attributeEntry[V]
}

type attributeEntry[V any] struct {
	key   []any
	value V
}

// AttributeOption configures an AttributeBasedCachedMethod.
type AttributeOption func(*attributeConfig)

type attributeConfig struct {
	maxEntries int
}

// WithMaxEntries sets how many attribute snapshots are kept. The oldest is
// evicted first. The default is 1.
func WithMaxEntries(n int) AttributeOption {
	return func(c *attributeConfig) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// NewAttributeBasedCachedMethod wraps fn, watching attrs on owner. The owner
// should be a pointer so that later changes to its fields are observed.
func NewAttributeBasedCachedMethod[V any](owner any, attrs []string, fn func() (V, error), opts ...AttributeOption) (*AttributeBasedCachedMethod[V], error) {
	if owner == nil {
		return nil, errors.New(errors.CodeInvalidInput, "attribute cache requires an owner")
	}
	if len(attrs) == 0 {
		return nil, errors.New(errors.CodeInvalidInput, "attribute cache requires at least one attribute")
	}

	cfg := attributeConfig{maxEntries: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AttributeBasedCachedMethod[V]{
		owner:      reflect.ValueOf(owner),
		attrs:      append([]string(nil), attrs...),
		fn:         fn,
		maxEntries: cfg.maxEntries,
	}, nil
}

// Call returns the result stored for the current attribute values, computing
// it on a miss.
func (c *AttributeBasedCachedMethod[V]) Call() (V, error) {
	key, ok := c.snapshot()
	if !ok {
		return c.fn()
	}

	c.mu.Lock()
	for _, e := range c.entries {
		if reflect.DeepEqual(e.key, key) {
			v := e.value
			c.mu.Unlock()
			return v, nil
		}
	}
	c.mu.Unlock()

	v, err := c.fn()
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	c.entries = append(c.entries, attributeEntry[V]{key: key, value: v})
	if over := len(c.entries) - c.maxEntries; over > 0 {
		c.entries = append(c.entries[:0:0], c.entries[over:]...)
	}
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops every stored result.
func (c *AttributeBasedCachedMethod[V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// Len returns the number of stored results.
func (c *AttributeBasedCachedMethod[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// snapshot reads the watched attributes. It reports false when any of them
// is missing.
func (c *AttributeBasedCachedMethod[V]) snapshot() ([]any, bool) {
	key := make([]any, len(c.attrs))
	for i, name := range c.attrs {
		v, ok := readAttribute(c.owner, name)
		if !ok {
			return nil, false
		}
		key[i] = v
	}
	return key, true
}

func readAttribute(owner reflect.Value, name string) (any, bool) {
	if m := owner.MethodByName(name); m.IsValid() {
		t := m.Type()
		if t.NumIn() == 0 && t.NumOut() == 1 {
			return m.Call(nil)[0].Interface(), true
		}
		return nil, false
	}

	v := owner
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	sf, ok := v.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return nil, false
	}
	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, false
	}
	return f.Interface(), true
}
