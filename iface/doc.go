// Package iface declares named interfaces and verifies, once, that concrete
// types structurally satisfy them.
//
// Go interfaces are satisfied implicitly and checked by the compiler. This
// package covers the cases the compiler cannot: contracts that include
// fields, contracts assembled at runtime, registries of which types promise
// which contracts, adapters between independently developed components, and
// proxies that hide everything outside a contract.
//
// # Declaring
//
// Interfaces are declared once, usually as package variables:
//
//	var IShape = iface.MustDeclareInterface("IShape",
//	    iface.Method("Area"),
//	    iface.ReadOnlyAttribute("Name", reflect.TypeFor[string]()),
//	)
//
// A type then declares that it implements them. The structural check runs
// immediately and the declaration is rejected as a whole if anything is
// missing:
//
//	func init() {
//	    iface.MustDeclare[Circle](nil, IShape)
//	}
//
// A failed declaration returns *BadImplementationError with every violation.
//
// # Asserting
//
// AssertImplements checks the declaration, not the structure, so it is a
// map lookup on the hot path:
//
//	if err := iface.AssertImplements(shape, IShape); err != nil {
//	    return err
//	}
//
// Declarations made by a pointer's element type or an embedded struct field
// also count, provided the outer type still satisfies the interface.
//
// # Full Checking
//
// With full checking enabled (WithFullChecking or
// FOUNDATION_IFACE_FULL_CHECKING=true for the default registry), assertions
// also re-run the structural check. Registry.Verify re-checks every
// declaration on demand. Both are diagnostics and should stay off hot paths.
//
// # Adapters and Stubs
//
// RegisterAdapter teaches the registry to convert values of one type into
// values that declare an interface. Adapt uses it when a value does not
// declare the interface itself. CreateStub wraps a value so that only the
// interface's members are reachable:
//
//	stub, err := iface.CreateStub(legacy, IShape)
//	results, err := stub.Call("Area")
//	_, err = stub.Call("Perimeter") // ErrMemberNotInInterface
//
// # Concurrency
//
// Registries are safe for concurrent use. Declarations take an exclusive
// lock and are expected during initialization; lookups share a read lock.
package iface
