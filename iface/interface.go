package iface

import (
	"go/token"
	"reflect"

	"github.com/jmgilman/foundation/errors"
)

// Interface is a named contract: an ordered set of required members.
// Interfaces are created by Registry.DeclareInterface and are immutable.
type Interface struct {
	name    string
	members []Member
	index   map[string]int
}

func newInterface(name string, members []Member) (*Interface, error) {
	if name == "" {
		return nil, errors.New(errors.CodeInvalidInput, "interface name must not be empty")
	}

	i := &Interface{
		name:    name,
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}
	for _, m := range members {
		if err := validateMember(m); err != nil {
			return nil, errors.WithContext(err, "interface", name)
		}
		if _, dup := i.index[m.Name]; dup {
			return nil, errors.WithContextMap(
				errors.Newf(errors.CodeInvalidInput, "member %q declared more than once", m.Name),
				map[string]any{"interface": name, "member": m.Name},
			)
		}
		i.index[m.Name] = len(i.members)
		i.members = append(i.members, m.clone())
	}
	return i, nil
}

func validateMember(m Member) error {
	if !token.IsIdentifier(m.Name) || !token.IsExported(m.Name) {
		return errors.Newf(errors.CodeInvalidInput, "member name %q is not an exported identifier", m.Name)
	}
	switch m.Kind {
	case KindMethod:
		if m.Type != nil {
			return errors.Newf(errors.CodeInvalidInput, "method %q cannot carry an attribute type", m.Name)
		}
		if len(m.ParamTypes) > len(m.Params) {
			return errors.Newf(errors.CodeInvalidInput, "method %q has more parameter types than parameters", m.Name)
		}
		if m.Variadic && len(m.Params) == 0 {
			return errors.Newf(errors.CodeInvalidInput, "variadic method %q needs at least one parameter", m.Name)
		}
		if t := m.paramType(len(m.Params) - 1); m.Variadic && t != nil && t.Kind() != reflect.Slice {
			return errors.Newf(errors.CodeInvalidInput, "variadic parameter of %q must have a slice type", m.Name)
		}
	case KindAttribute, KindReadOnlyAttribute:
		if len(m.Params) > 0 || len(m.ParamTypes) > 0 {
			return errors.Newf(errors.CodeInvalidInput, "attribute %q cannot take parameters", m.Name)
		}
	default:
		return errors.Newf(errors.CodeInvalidInput, "member %q has unknown kind %d", m.Name, int(m.Kind))
	}
	return nil
}

// fromGoInterface derives members from the method set of a Go interface type.
func fromGoInterface(name string, t reflect.Type) (*Interface, error) {
	if t == nil || t.Kind() != reflect.Interface {
		return nil, errors.Newf(errors.CodeInvalidInput, "%v is not an interface type", t)
	}
	members := make([]Member, 0, t.NumMethod())
	for idx := 0; idx < t.NumMethod(); idx++ {
		m := t.Method(idx)
		types := make([]reflect.Type, m.Type.NumIn())
		for p := range types {
			types[p] = m.Type.In(p)
		}
		member := Method(m.Name).WithTypes(types...)
		member.Variadic = m.Type.IsVariadic()
		members = append(members, member)
	}
	return newInterface(name, members)
}

// Name returns the interface name.
func (i *Interface) Name() string {
	return i.name
}

// String returns the interface name.
func (i *Interface) String() string {
	return i.name
}

// Members returns a copy of the members in declaration order.
func (i *Interface) Members() []Member {
	out := make([]Member, len(i.members))
	for idx, m := range i.members {
		out[idx] = m.clone()
	}
	return out
}

// Member looks up a member by name.
func (i *Interface) Member(name string) (Member, bool) {
	idx, ok := i.index[name]
	if !ok {
		return Member{}, false
	}
	return i.members[idx].clone(), true
}

// Has reports whether name is a member of the interface.
func (i *Interface) Has(name string) bool {
	_, ok := i.index[name]
	return ok
}

// Len returns the number of members.
func (i *Interface) Len() int {
	return len(i.members)
}

// sameMembers reports whether members describe the same requirement set,
// ignoring order.
func (i *Interface) sameMembers(members []Member) bool {
	if len(members) != len(i.members) {
		return false
	}
	for _, m := range members {
		idx, ok := i.index[m.Name]
		if !ok || !i.members[idx].equal(m) {
			return false
		}
	}
	return true
}
