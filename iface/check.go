package iface

import (
	"fmt"
	"reflect"
)

// CheckConformance reports every member of i that t does not structurally
// satisfy. An empty result means t conforms.
//
// Methods are looked up in t's method set, so a method with a pointer
// receiver only counts when t is the pointer type. A method conforms when it
// can be called with exactly the parameters the member lists: the same
// number of fixed parameters, or fewer fixed parameters followed by a
// variadic one. Attributes are exported struct fields, including promoted
// fields; read-only attributes may also be zero-argument getter methods.
func CheckConformance(t reflect.Type, i *Interface) []Violation {
	var out []Violation
	for _, m := range i.members {
		if detail, kind, ok := checkMember(t, m); !ok {
			out = append(out, Violation{
				Interface: i.name,
				Member:    m.Name,
				Kind:      kind,
				Detail:    detail,
			})
		}
	}
	return out
}

func checkMember(t reflect.Type, m Member) (string, ViolationKind, bool) {
	if t == nil {
		return "", ViolationMissing, false
	}
	switch m.Kind {
	case KindMethod:
		return checkMethod(t, m)
	case KindAttribute:
		return checkAttribute(t, m, false)
	default:
		return checkAttribute(t, m, true)
	}
}

func checkMethod(t reflect.Type, m Member) (string, ViolationKind, bool) {
	method, ok := t.MethodByName(m.Name)
	if !ok {
		if hint, found := pointerReceiverHint(t, m.Name); found {
			return hint, ViolationMismatch, false
		}
		if _, isField := exportedField(t, m.Name); isField {
			return "is a field, not a method", ViolationMismatch, false
		}
		return "", ViolationMissing, false
	}

	fn := method.Type
	offset := receiverOffset(t)
	in := fn.NumIn() - offset
	fixed := in
	if fn.IsVariadic() {
		fixed--
	}
	required := len(m.Params)

	if m.Variadic {
		if !fn.IsVariadic() || fixed != required-1 {
			return fmt.Sprintf("must be variadic with %d fixed parameters", required-1), ViolationMismatch, false
		}
	} else {
		switch {
		case fixed > required:
			return fmt.Sprintf("requires %d parameters, interface passes %d", fixed, required), ViolationMismatch, false
		case fixed < required && !fn.IsVariadic():
			return fmt.Sprintf("accepts %d parameters, interface passes %d", fixed, required), ViolationMismatch, false
		}
	}

	for idx, want := range m.ParamTypes {
		if want == nil {
			continue
		}
		var got reflect.Type
		switch {
		case idx < fixed:
			got = fn.In(idx + offset)
		case m.Variadic:
			got = fn.In(fn.NumIn() - 1)
		default:
			got = fn.In(fn.NumIn() - 1).Elem()
		}
		if !want.AssignableTo(got) {
			return fmt.Sprintf("parameter %s has type %s, interface passes %s", m.Params[idx], got, want),
				ViolationMismatch, false
		}
	}
	return "", ViolationMissing, true
}

func checkAttribute(t reflect.Type, m Member, readOnly bool) (string, ViolationKind, bool) {
	if f, ok := structField(t, m.Name); ok {
		if !f.IsExported() {
			return "field is not exported", ViolationMismatch, false
		}
		if m.Type != nil {
			if !f.Type.AssignableTo(m.Type) {
				return fmt.Sprintf("field has type %s, interface expects %s", f.Type, m.Type), ViolationMismatch, false
			}
			if !readOnly && !m.Type.AssignableTo(f.Type) {
				return fmt.Sprintf("field of type %s cannot be assigned a %s", f.Type, m.Type), ViolationMismatch, false
			}
		}
		return "", ViolationMissing, true
	}

	method, ok := t.MethodByName(m.Name)
	if !ok {
		if hint, found := pointerReceiverHint(t, m.Name); found && readOnly {
			return hint, ViolationMismatch, false
		}
		return "", ViolationMissing, false
	}
	if !readOnly {
		return "is a method; settable attributes must be fields", ViolationMismatch, false
	}

	fn := method.Type
	if fn.NumIn()-receiverOffset(t) != 0 || fn.NumOut() != 1 {
		return "getter must take no parameters and return one value", ViolationMismatch, false
	}
	if m.Type != nil && !fn.Out(0).AssignableTo(m.Type) {
		return fmt.Sprintf("getter returns %s, interface expects %s", fn.Out(0), m.Type), ViolationMismatch, false
	}
	return "", ViolationMissing, true
}

// receiverOffset is 1 for concrete types, whose method types include the
// receiver, and 0 for interface types.
func receiverOffset(t reflect.Type) int {
	if t.Kind() == reflect.Interface {
		return 0
	}
	return 1
}

func pointerReceiverHint(t reflect.Type, name string) (string, bool) {
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return "", false
	}
	if _, ok := reflect.PointerTo(t).MethodByName(name); ok {
		return fmt.Sprintf("method has a pointer receiver; declare *%s instead", t), true
	}
	return "", false
}

func structField(t reflect.Type, name string) (reflect.StructField, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	return t.FieldByName(name)
}

func exportedField(t reflect.Type, name string) (reflect.StructField, bool) {
	f, ok := structField(t, name)
	if !ok || !f.IsExported() {
		return reflect.StructField{}, false
	}
	return f, true
}
