package iface

import (
	"fmt"
	"reflect"
	"strings"
)

// MemberKind identifies what sort of requirement a Member expresses.
type MemberKind int

const (
	// KindMethod requires a callable method.
	KindMethod MemberKind = iota
	// KindAttribute requires a readable and writable exported field.
	KindAttribute
	// KindReadOnlyAttribute requires a readable value: an exported field or
	// a zero-argument getter method.
	KindReadOnlyAttribute
)

// String returns a string representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindAttribute:
		return "attribute"
	case KindReadOnlyAttribute:
		return "read-only attribute"
	default:
		return "unknown"
	}
}

// Member is a single requirement of an Interface.
type Member struct {
	// Name is the exported Go identifier the candidate must expose.
	Name string

	// Kind selects how the candidate is checked.
	Kind MemberKind

	// Params names the parameters a method is called with. Only the count
	// takes part in conformance checks unless ParamTypes is set.
	Params []string

	// ParamTypes optionally constrains parameter types, one entry per
	// Params entry. A nil entry accepts any type.
	ParamTypes []reflect.Type

	// Variadic marks the last parameter as variadic. Candidates must then be
	// variadic too, with the final ParamTypes entry holding the slice type.
	Variadic bool

	// Type optionally constrains an attribute's value type.
	Type reflect.Type
}

// Method returns a method requirement called with the named parameters.
func Method(name string, params ...string) Member {
	return Member{
		Name:   name,
		Kind:   KindMethod,
		Params: append([]string(nil), params...),
	}
}

// Attribute returns a settable attribute requirement. A nil typ accepts any
// value type.
func Attribute(name string, typ reflect.Type) Member {
	return Member{Name: name, Kind: KindAttribute, Type: typ}
}

// ReadOnlyAttribute returns a read-only attribute requirement. A nil typ
// accepts any value type.
//
// Assigning a read-only attribute through a Stub is rejected. Direct
// assignment on the implementing value is not intercepted.
func ReadOnlyAttribute(name string, typ reflect.Type) Member {
	return Member{Name: name, Kind: KindReadOnlyAttribute, Type: typ}
}

// WithTypes returns a copy of a method requirement with parameter types
// attached. When fewer types than parameters are given the remainder accept
// any type; when more are given, placeholder parameter names are added.
func (m Member) WithTypes(types ...reflect.Type) Member {
	out := m.clone()
	for len(out.Params) < len(types) {
		out.Params = append(out.Params, fmt.Sprintf("arg%d", len(out.Params)))
	}
	out.ParamTypes = make([]reflect.Type, len(out.Params))
	copy(out.ParamTypes, types)
	return out
}

// Arity returns the number of parameters a method requirement is called with.
func (m Member) Arity() int {
	return len(m.Params)
}

// String renders the member in a Go-like signature form.
func (m Member) String() string {
	switch m.Kind {
	case KindMethod:
		parts := make([]string, len(m.Params))
		for i, p := range m.Params {
			parts[i] = p
			if t := m.paramType(i); t != nil {
				if m.Variadic && i == len(m.Params)-1 {
					parts[i] += " ..." + t.Elem().String()
				} else {
					parts[i] += " " + t.String()
				}
			} else if m.Variadic && i == len(m.Params)-1 {
				parts[i] += "..."
			}
		}
		return fmt.Sprintf("%s(%s)", m.Name, strings.Join(parts, ", "))
	default:
		if m.Type != nil {
			return fmt.Sprintf("%s %s %s", m.Kind, m.Name, m.Type)
		}
		return fmt.Sprintf("%s %s", m.Kind, m.Name)
	}
}

func (m Member) clone() Member {
	m.Params = append([]string(nil), m.Params...)
	if m.ParamTypes != nil {
		m.ParamTypes = append([]reflect.Type(nil), m.ParamTypes...)
	}
	return m
}

// equal reports whether two members impose the same requirement.
// Parameter names are documentation and do not take part.
func (m Member) equal(o Member) bool {
	if m.Name != o.Name || m.Kind != o.Kind || m.Type != o.Type ||
		m.Variadic != o.Variadic || len(m.Params) != len(o.Params) {
		return false
	}
	for i := range m.Params {
		if m.paramType(i) != o.paramType(i) {
			return false
		}
	}
	return true
}

func (m Member) paramType(i int) reflect.Type {
	if i >= 0 && i < len(m.ParamTypes) {
		return m.ParamTypes[i]
	}
	return nil
}
