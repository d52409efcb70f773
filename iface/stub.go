package iface

import (
	"reflect"
	"sort"
)

// Stub is a view of a value restricted to the members of one interface.
// Every call and attribute access is delegated to the underlying value;
// anything outside the interface fails with ErrMemberNotInInterface even
// when the value supports it.
type Stub struct {
	iface  *Interface
	target reflect.Value
}

// CreateStub wraps obj behind i. The value is first passed through Adapt, so
// values whose type does not declare i are accepted when an adapter exists.
func (r *Registry) CreateStub(obj any, i *Interface) (*Stub, error) {
	adapted, err := r.Adapt(obj, i)
	if err != nil {
		return nil, err
	}
	return &Stub{iface: i, target: reflect.ValueOf(adapted)}, nil
}

// Interface returns the interface the stub exposes.
func (s *Stub) Interface() *Interface {
	return s.iface
}

// Members returns the names of the exposed members, sorted.
func (s *Stub) Members() []string {
	names := make([]string, 0, len(s.iface.members))
	for _, m := range s.iface.members {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the named method with args and returns its results.
//
// The number of arguments must match the member's parameters (at least
// all fixed parameters for variadic members). A nil argument is passed as
// the zero value of the parameter type.
func (s *Stub) Call(name string, args ...any) ([]any, error) {
	m, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	if m.Kind != KindMethod {
		return nil, s.fail(name, ErrNotCallable)
	}

	method := s.target.MethodByName(name)
	if !method.IsValid() {
		return nil, s.fail(name, ErrNotConformant)
	}

	in, err := s.arguments(m, method.Type(), args)
	if err != nil {
		return nil, err
	}

	results := method.Call(in)
	out := make([]any, len(results))
	for idx, v := range results {
		out[idx] = v.Interface()
	}
	return out, nil
}

func (s *Stub) arguments(m Member, fn reflect.Type, args []any) ([]reflect.Value, error) {
	required := len(m.Params)
	if m.Variadic {
		if len(args) < required-1 {
			return nil, s.fail(m.Name, ErrBadArguments)
		}
	} else if len(args) != required {
		return nil, s.fail(m.Name, ErrBadArguments)
	}

	fixed := fn.NumIn()
	if fn.IsVariadic() {
		fixed--
	}
	in := make([]reflect.Value, len(args))
	for idx, arg := range args {
		var pt reflect.Type
		if idx < fixed {
			pt = fn.In(idx)
		} else {
			pt = fn.In(fn.NumIn() - 1).Elem()
		}
		v, ok := argumentValue(arg, pt)
		if !ok {
			return nil, s.fail(m.Name, ErrBadArguments)
		}
		in[idx] = v
	}
	return in, nil
}

func argumentValue(arg any, pt reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(pt), true
		default:
			return reflect.Value{}, false
		}
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, false
	}
	return v, true
}

// Get returns the value of the named attribute. For a method member it
// returns the bound method value.
func (s *Stub) Get(name string) (any, error) {
	m, err := s.lookup(name)
	if err != nil {
		return nil, err
	}

	if m.Kind == KindMethod {
		method := s.target.MethodByName(name)
		if !method.IsValid() {
			return nil, s.fail(name, ErrNotConformant)
		}
		return method.Interface(), nil
	}

	if field, ok := s.field(name); ok {
		return field.Interface(), nil
	}
	getter := s.target.MethodByName(name)
	if !getter.IsValid() {
		return nil, s.fail(name, ErrNotConformant)
	}
	return getter.Call(nil)[0].Interface(), nil
}

// Set assigns the named attribute. Read-only attributes and methods are
// rejected, as are targets that are not pointers to structs.
func (s *Stub) Set(name string, value any) error {
	m, err := s.lookup(name)
	if err != nil {
		return err
	}
	switch m.Kind {
	case KindMethod:
		return s.fail(name, ErrNotAttribute)
	case KindReadOnlyAttribute:
		return s.fail(name, ErrReadOnlyMember)
	}

	field, ok := s.field(name)
	if !ok || !field.CanSet() {
		return s.fail(name, ErrNotSettable)
	}
	v, ok := argumentValue(value, field.Type())
	if !ok {
		return s.fail(name, ErrBadArguments)
	}
	field.Set(v)
	return nil
}

func (s *Stub) lookup(name string) (Member, error) {
	idx, ok := s.iface.index[name]
	if !ok {
		return Member{}, s.fail(name, ErrMemberNotInInterface)
	}
	return s.iface.members[idx], nil
}

// field resolves an exported struct field on the target, following one
// level of pointer indirection.
func (s *Stub) field(name string) (reflect.Value, bool) {
	v := s.target
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	sf, ok := v.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, false
	}
	f, err := v.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

func (s *Stub) fail(member string, reason error) error {
	return &InterfaceError{
		Type:      s.target.Type(),
		Interface: s.iface.name,
		Member:    member,
		Reason:    reason,
	}
}
