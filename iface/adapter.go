package iface

import (
	"reflect"

	"github.com/jmgilman/foundation/errors"
)

// AdapterFunc produces a value conforming to an interface from a value that
// does not. The returned value's type must itself declare the interface.
type AdapterFunc func(obj any) (any, error)

type adapterKey struct {
	source reflect.Type
	iface  *Interface
}

// RegisterAdapter records fn as the way to adapt values of source to i.
//
// source may be a concrete type or a Go interface type; in the latter case
// the adapter applies to every type implementing it. Adapters of concrete
// types take precedence, then interface-typed adapters in registration
// order. Registering a second adapter for the same pair fails with
// errors.CodeAlreadyExists.
func (r *Registry) RegisterAdapter(source reflect.Type, i *Interface, fn AdapterFunc) error {
	if source == nil || i == nil || fn == nil {
		return errors.New(errors.CodeInvalidInput, "adapter registration requires a source type, an interface and a function")
	}

	key := adapterKey{source: source, iface: i}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[key]; exists {
		return errors.WithContextMap(
			errors.Newf(errors.CodeAlreadyExists, "adapter from %s to %s already registered", source, i.name),
			map[string]any{"source": source.String(), "interface": i.name},
		)
	}
	r.adapters[key] = fn
	r.adapterSeq = append(r.adapterSeq, key)
	r.logger.Debug("adapter registered", "source", source.String(), "interface", i.name)
	return nil
}

// Adapt returns obj unchanged if its type declares i. Otherwise it applies
// the registered adapter for obj's type and returns the adapter's output,
// which must declare i. Any failure is reported as *AdaptationError.
func (r *Registry) Adapt(obj any, i *Interface) (any, error) {
	if i == nil {
		return nil, errors.New(errors.CodeInvalidInput, "nil interface")
	}
	if obj == nil {
		return nil, &AdaptationError{
			Interface: i.name,
			Err:       errors.New(errors.CodeInvalidInput, "cannot adapt a nil value"),
		}
	}

	t := reflect.TypeOf(obj)
	if r.Declares(t, i) {
		if r.fullChecking {
			if err := r.fullCheck(t, i); err != nil {
				return nil, &AdaptationError{Type: t, Interface: i.name, Err: err}
			}
		}
		return obj, nil
	}

	fn, arg, ok := r.findAdapter(obj, t, i)
	if !ok {
		return nil, &AdaptationError{Type: t, Interface: i.name, Err: ErrNoAdapter}
	}

	out, err := fn(arg)
	if err != nil {
		return nil, &AdaptationError{Type: t, Interface: i.name, Err: err}
	}
	if out == nil {
		return nil, &AdaptationError{
			Type:      t,
			Interface: i.name,
			Err:       errors.New(errors.CodeAdaptation, "adapter returned nil"),
		}
	}
	if err := r.AssertImplements(out, i); err != nil {
		return nil, &AdaptationError{Type: t, Interface: i.name, Err: err}
	}
	return out, nil
}

// findAdapter resolves the adapter for obj and the argument to call it with.
// A pointer whose element type has an adapter is dereferenced.
func (r *Registry) findAdapter(obj any, t reflect.Type, i *Interface) (AdapterFunc, any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if fn, ok := r.adapters[adapterKey{source: t, iface: i}]; ok {
		return fn, obj, true
	}
	if t.Kind() == reflect.Pointer {
		if fn, ok := r.adapters[adapterKey{source: t.Elem(), iface: i}]; ok {
			v := reflect.ValueOf(obj)
			if !v.IsNil() {
				return fn, v.Elem().Interface(), true
			}
		}
	}
	for _, key := range r.adapterSeq {
		if key.iface != i || key.source.Kind() != reflect.Interface {
			continue
		}
		if t.Implements(key.source) {
			return r.adapters[key], obj, true
		}
	}
	return nil, nil, false
}

// HasAdapter reports whether an adapter is registered for exactly source and i.
func (r *Registry) HasAdapter(source reflect.Type, i *Interface) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.adapters[adapterKey{source: source, iface: i}]
	return ok
}
