package iface

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jmgilman/foundation/errors"
)

// Reasons carried by InterfaceError. Match them with errors.Is.
var (
	// ErrNotDeclared means the type never completed DeclareImplementation
	// for the interface.
	ErrNotDeclared = errors.New(errors.CodeInterface, "type does not declare interface")

	// ErrNotConformant means a declared type failed a full structural re-check.
	ErrNotConformant = errors.New(errors.CodeInterface, "type no longer conforms to interface")

	// ErrMemberNotInInterface means a stub was asked for a member outside
	// the contract.
	ErrMemberNotInInterface = errors.New(errors.CodeInterface, "member is not part of interface")

	// ErrNotCallable means Call was used on an attribute.
	ErrNotCallable = errors.New(errors.CodeInterface, "member is not a method")

	// ErrNotAttribute means Set was used on a method.
	ErrNotAttribute = errors.New(errors.CodeInterface, "member is not an attribute")

	// ErrReadOnlyMember means Set was used on a read-only attribute.
	ErrReadOnlyMember = errors.New(errors.CodeInterface, "member is read-only")

	// ErrNotSettable means the stub target cannot be written through, for
	// example because it is not a pointer.
	ErrNotSettable = errors.New(errors.CodeInterface, "member cannot be set on this target")

	// ErrBadArguments means values passed through a stub do not fit the member.
	ErrBadArguments = errors.New(errors.CodeInterface, "arguments do not match member")
)

// ErrNoAdapter is carried by AdaptationError when no adapter is registered
// for the source type and interface.
var ErrNoAdapter = errors.New(errors.CodeAdaptation, "no adapter registered")

// DuplicateInterfaceError is returned when an interface name is declared a
// second time with a different member set.
type DuplicateInterfaceError struct {
	// Name is the contested interface name.
	Name string

	// Existing holds the members of the interface already registered.
	Existing []Member

	// Requested holds the members of the rejected declaration.
	Requested []Member
}

// Error implements the error interface.
func (e *DuplicateInterfaceError) Error() string {
	return fmt.Sprintf("interface %q already declared with a different member set", e.Name)
}

// Code implements errors.Coder.
func (e *DuplicateInterfaceError) Code() errors.ErrorCode {
	return errors.CodeDuplicateInterface
}

// BadImplementationError is returned when a type claims interfaces it does
// not structurally satisfy. The type is not registered for any of them.
type BadImplementationError struct {
	// Type is the rejected type.
	Type reflect.Type

	// Interfaces names every interface in the rejected declaration.
	Interfaces []string

	// Violations lists every missing or mismatched member.
	Violations []Violation
}

// Error implements the error interface.
func (e *BadImplementationError) Error() string {
	return fmt.Sprintf("type %s does not implement %s: %s",
		typeName(e.Type), strings.Join(e.Interfaces, ", "), joinViolations(e.Violations))
}

// Code implements errors.Coder.
func (e *BadImplementationError) Code() errors.ErrorCode {
	return errors.CodeBadImplementation
}

// InterfaceError is returned when conformance is asserted but not satisfied,
// or when a stub is used outside its contract. Reason holds one of the
// package's sentinel errors.
type InterfaceError struct {
	// Type is the type being checked or wrapped.
	Type reflect.Type

	// Interface is the interface name.
	Interface string

	// Member is set when the failure concerns a single member.
	Member string

	// Reason is the sentinel describing the failure.
	Reason error

	// Violations lists structural violations, when known.
	Violations []Violation
}

// Error implements the error interface.
func (e *InterfaceError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "interface %s: type %s: %s", e.Interface, typeName(e.Type), reasonText(e.Reason))
	if e.Member != "" {
		fmt.Fprintf(&b, ": %s", e.Member)
	}
	if len(e.Violations) > 0 {
		fmt.Fprintf(&b, " (%s)", joinViolations(e.Violations))
	}
	return b.String()
}

// Unwrap returns Reason.
func (e *InterfaceError) Unwrap() error {
	return e.Reason
}

// Code implements errors.Coder.
func (e *InterfaceError) Code() errors.ErrorCode {
	return errors.CodeInterface
}

// AdaptationError is returned when a value neither conforms to an interface
// nor can be adapted to it.
type AdaptationError struct {
	// Type is the type of the value being adapted.
	Type reflect.Type

	// Interface is the interface name.
	Interface string

	// Err is the cause: ErrNoAdapter, the adapter's own error, or the
	// InterfaceError raised against the adapter's output.
	Err error
}

// Error implements the error interface.
func (e *AdaptationError) Error() string {
	return fmt.Sprintf("cannot adapt %s to %s: %s", typeName(e.Type), e.Interface, reasonText(e.Err))
}

// Unwrap returns Err.
func (e *AdaptationError) Unwrap() error {
	return e.Err
}

// Code implements errors.Coder.
func (e *AdaptationError) Code() errors.ErrorCode {
	return errors.CodeAdaptation
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func reasonText(err error) string {
	if err == nil {
		return "unknown reason"
	}
	if e, ok := err.(errors.Error); ok && e.Unwrap() == nil {
		return e.Message()
	}
	return err.Error()
}

func joinViolations(vs []Violation) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}
