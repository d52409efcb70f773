package callback

import (
	"log/slog"
	"slices"
	"sync"
	"weak"
)

// ID identifies a registration.
type ID uint64

// Option configures a Callback.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report pruned registrations.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type entry[T any] struct {
	id ID
	// invoke calls the target and reports false when it no longer exists.
	invoke func(T) bool
	alive  func() bool
}

// Callback dispatches values of type T to registered functions. It is safe
// for concurrent use; registrations run outside the internal lock, so a
// callback may register or unregister others while it runs.
type Callback[T any] struct {
	mu      sync.Mutex
	next    ID
	entries []entry[T]
	logger  *slog.Logger
}

// New returns an empty Callback.
func New[T any](opts ...Option) *Callback[T] {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Callback[T]{logger: cfg.logger}
}

// Register adds fn and returns its registration ID. fn is held strongly.
func (c *Callback[T]) Register(fn func(T)) ID {
	return c.add(entry[T]{
		invoke: func(v T) bool {
			fn(v)
			return true
		},
		alive: func() bool { return true },
	})
}

// RegisterMethod adds method bound to owner. The owner is referenced
// weakly: the registration does not keep it alive and disappears once the
// owner has been collected. method must not capture owner itself.
func RegisterMethod[O, T any](c *Callback[T], owner *O, method func(*O, T)) ID {
	ref := weak.Make(owner)
	return c.add(entry[T]{
		invoke: func(v T) bool {
			target := ref.Value()
			if target == nil {
				return false
			}
			method(target, v)
			return true
		},
		alive: func() bool { return ref.Value() != nil },
	})
}

func (c *Callback[T]) add(e entry[T]) ID {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.next++
	e.id = c.next
	c.entries = append(c.entries, e)
	return e.id
}

// Unregister removes the registration id and reports whether it was present.
func (c *Callback[T]) Unregister(id ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.entries, func(e entry[T]) bool { return e.id == id })
	if i < 0 {
		return false
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	return true
}

// Contains reports whether id is registered and its target is still alive.
func (c *Callback[T]) Contains(id ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.id == id {
			return e.alive()
		}
	}
	return false
}

// Len returns the number of registrations whose targets are alive.
func (c *Callback[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.alive() {
			n++
		}
	}
	return n
}

// Clear removes every registration.
func (c *Callback[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
}

// Call invokes every registration in registration order with v.
// Registrations whose owners have been collected are removed.
func (c *Callback[T]) Call(v T) {
	c.mu.Lock()
	snapshot := slices.Clone(c.entries)
	c.mu.Unlock()

	var dead []ID
	for _, e := range snapshot {
		if !e.invoke(v) {
			dead = append(dead, e.id)
		}
	}
	if len(dead) == 0 {
		return
	}

	c.mu.Lock()
	c.entries = slices.DeleteFunc(c.entries, func(e entry[T]) bool {
		return slices.Contains(dead, e.id)
	})
	c.mu.Unlock()

	c.logger.Debug("pruned dead callbacks", "count", len(dead))
}
