package iface

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/jmgilman/foundation/errors"
)

// Registry tracks declared interfaces, the types that implement them and the
// adapters between them.
//
// A Registry only grows. Declarations are serialized under an exclusive lock
// and are expected to happen during program initialization; lookups take a
// shared lock and are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	interfaces map[string]*Interface
	order      []*Interface
	records    map[reflect.Type]*record
	adapters   map[adapterKey]AdapterFunc
	adapterSeq []adapterKey

	// inherited caches structural results for declarations reached through a
	// supertype (pointer element or embedded field), keyed by pairKey.
	inherited sync.Map

	fullChecking bool
	logger       *slog.Logger
}

// record is the conformance record of one type.
type record struct {
	interfaces []*Interface
}

func (r *record) has(i *Interface) bool {
	for _, existing := range r.interfaces {
		if existing == i {
			return true
		}
	}
	return false
}

type pairKey struct {
	t     reflect.Type
	iface *Interface
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for declaration and drift messages.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFullChecking enables or disables full-checking mode. In this mode
// assertions re-run the structural check after the declared-conformance
// check. It is slower and meant for tests and debugging.
func WithFullChecking(enabled bool) Option {
	return func(r *Registry) {
		r.fullChecking = enabled
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		interfaces: make(map[string]*Interface),
		records:    make(map[reflect.Type]*record),
		adapters:   make(map[adapterKey]AdapterFunc),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FullChecking reports whether full-checking mode is enabled.
func (r *Registry) FullChecking() bool {
	return r.fullChecking
}

// DeclareInterface registers a named interface. Declaring a name again with
// the same members returns the existing Interface; declaring it with a
// different member set fails with *DuplicateInterfaceError.
func (r *Registry) DeclareInterface(name string, members ...Member) (*Interface, error) {
	candidate, err := newInterface(name, members)
	if err != nil {
		return nil, err
	}
	return r.register(candidate)
}

// DeclareGoInterface registers an interface whose members are the methods of
// the Go interface type t, with their parameter types.
func (r *Registry) DeclareGoInterface(name string, t reflect.Type) (*Interface, error) {
	candidate, err := fromGoInterface(name, t)
	if err != nil {
		return nil, err
	}
	return r.register(candidate)
}

func (r *Registry) register(candidate *Interface) (*Interface, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.interfaces[candidate.name]; ok {
		if existing.sameMembers(candidate.members) {
			return existing, nil
		}
		return nil, &DuplicateInterfaceError{
			Name:      candidate.name,
			Existing:  existing.Members(),
			Requested: candidate.Members(),
		}
	}

	r.interfaces[candidate.name] = candidate
	r.order = append(r.order, candidate)
	r.logger.Debug("interface declared", "interface", candidate.name, "members", candidate.Len())
	return candidate, nil
}

// Interface looks up a declared interface by name.
func (r *Registry) Interface(name string) (*Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.interfaces[name]
	return i, ok
}

// Interfaces returns every declared interface in declaration order.
func (r *Registry) Interfaces() []*Interface {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Interface(nil), r.order...)
}

// DeclareImplementation records that t implements each of ifaces after
// checking it structurally. If any member of any interface is missing or
// mismatched it fails with *BadImplementationError listing every violation,
// and t is registered for none of them.
//
// Declaring the same pair again is a no-op.
func (r *Registry) DeclareImplementation(t reflect.Type, ifaces ...*Interface) error {
	if t == nil {
		return errors.New(errors.CodeInvalidInput, "cannot declare an implementation for a nil type")
	}
	if len(ifaces) == 0 {
		return errors.Newf(errors.CodeInvalidInput, "no interfaces given for type %s", t)
	}

	names := make([]string, 0, len(ifaces))
	var violations []Violation
	for _, i := range ifaces {
		if i == nil {
			return errors.Newf(errors.CodeInvalidInput, "nil interface given for type %s", t)
		}
		names = append(names, i.name)
		violations = append(violations, CheckConformance(t, i)...)
	}

	if len(violations) > 0 {
		r.logger.Warn("implementation rejected",
			"type", t.String(), "interfaces", names, "violations", len(violations))
		return &BadImplementationError{Type: t, Interfaces: names, Violations: violations}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[t]
	if !ok {
		rec = &record{}
		r.records[t] = rec
	}
	for _, i := range ifaces {
		if !rec.has(i) {
			rec.interfaces = append(rec.interfaces, i)
		}
	}
	r.logger.Debug("implementation declared", "type", t.String(), "interfaces", names)
	return nil
}

// ImplementedInterfaces returns the interfaces t has declared, followed by
// those declared by its supertypes (the element type of a pointer and any
// embedded struct field, recursively) that t still satisfies. Unknown types
// yield an empty result.
func (r *Registry) ImplementedInterfaces(t reflect.Type) []*Interface {
	if t == nil {
		return nil
	}

	r.mu.RLock()
	var direct []*Interface
	if rec, ok := r.records[t]; ok {
		direct = append(direct, rec.interfaces...)
	}
	var candidates []*Interface
	r.collectSupertypes(t, func(i *Interface) {
		candidates = append(candidates, i)
	})
	r.mu.RUnlock()

	seen := make(map[*Interface]bool, len(direct)+len(candidates))
	out := make([]*Interface, 0, len(direct)+len(candidates))
	for _, i := range direct {
		seen[i] = true
		out = append(out, i)
	}
	for _, i := range candidates {
		if seen[i] {
			continue
		}
		seen[i] = true
		if r.inheritedConforms(t, i) {
			out = append(out, i)
		}
	}
	return out
}

// collectSupertypes visits the declared interfaces of t's supertypes.
// The caller holds r.mu.
func (r *Registry) collectSupertypes(t reflect.Type, visit func(*Interface)) {
	seen := map[reflect.Type]bool{t: true}
	var walk func(reflect.Type)
	walk = func(t reflect.Type) {
		var next []reflect.Type
		switch t.Kind() {
		case reflect.Pointer:
			next = append(next, t.Elem())
		case reflect.Struct:
			for idx := 0; idx < t.NumField(); idx++ {
				if f := t.Field(idx); f.Anonymous {
					next = append(next, f.Type)
				}
			}
		}
		for _, s := range next {
			if seen[s] {
				continue
			}
			seen[s] = true
			if rec, ok := r.records[s]; ok {
				for _, i := range rec.interfaces {
					visit(i)
				}
			}
			walk(s)
		}
	}
	walk(t)
}

func (r *Registry) inheritedConforms(t reflect.Type, i *Interface) bool {
	key := pairKey{t: t, iface: i}
	if v, ok := r.inherited.Load(key); ok {
		return v.(bool)
	}
	ok := len(CheckConformance(t, i)) == 0
	r.inherited.Store(key, ok)
	return ok
}

// Declares reports whether t has declared i, directly or through a supertype.
func (r *Registry) Declares(t reflect.Type, i *Interface) bool {
	if t == nil || i == nil {
		return false
	}

	r.mu.RLock()
	if rec, ok := r.records[t]; ok && rec.has(i) {
		r.mu.RUnlock()
		return true
	}
	inherited := false
	r.collectSupertypes(t, func(candidate *Interface) {
		if candidate == i {
			inherited = true
		}
	})
	r.mu.RUnlock()

	return inherited && r.inheritedConforms(t, i)
}

// CheckConformance runs the structural check of t against i. It ignores
// declarations and caches.
func (r *Registry) CheckConformance(t reflect.Type, i *Interface) []Violation {
	return CheckConformance(t, i)
}

// AssertImplements fails with *InterfaceError if the dynamic type of obj has
// not declared i. This is a declared-conformance check; in full-checking mode
// the structural check is re-run as well.
func (r *Registry) AssertImplements(obj any, i *Interface) error {
	return r.AssertDeclaresInterface(reflect.TypeOf(obj), i)
}

// AssertDeclaresInterface is AssertImplements for a type rather than a value.
func (r *Registry) AssertDeclaresInterface(t reflect.Type, i *Interface) error {
	if i == nil {
		return errors.New(errors.CodeInvalidInput, "nil interface")
	}
	if !r.Declares(t, i) {
		var violations []Violation
		if t != nil {
			violations = CheckConformance(t, i)
		}
		return &InterfaceError{
			Type:       t,
			Interface:  i.name,
			Reason:     ErrNotDeclared,
			Violations: violations,
		}
	}
	if r.fullChecking {
		return r.fullCheck(t, i)
	}
	return nil
}

func (r *Registry) fullCheck(t reflect.Type, i *Interface) error {
	violations := CheckConformance(t, i)
	if len(violations) == 0 {
		return nil
	}
	r.logger.Warn("declared implementation no longer conforms",
		"type", t.String(), "interface", i.name, "violations", len(violations))
	return &InterfaceError{
		Type:       t,
		Interface:  i.name,
		Reason:     ErrNotConformant,
		Violations: violations,
	}
}

// Verify re-runs the structural check for every recorded declaration,
// regardless of full-checking mode, and returns the joined errors for those
// that no longer conform, ordered by type name and then interface name.
func (r *Registry) Verify() error {
	r.mu.RLock()
	pairs := make([]pairKey, 0, len(r.records))
	for t, rec := range r.records {
		for _, i := range rec.interfaces {
			pairs = append(pairs, pairKey{t: t, iface: i})
		}
	}
	r.mu.RUnlock()

	sort.Slice(pairs, func(a, b int) bool {
		if ta, tb := pairs[a].t.String(), pairs[b].t.String(); ta != tb {
			return ta < tb
		}
		return pairs[a].iface.name < pairs[b].iface.name
	})

	var errs []error
	for _, p := range pairs {
		if err := r.fullCheck(p.t, p.iface); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
