package iface

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"sync"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the process-wide Registry used by the package-level
// functions. It is built on first use from ConfigFromEnv. An invalid
// environment is logged to stderr and falls back to a registry with default
// settings; DefaultErr returns the cause.
func Default() *Registry {
	defaultOnce.Do(func() {
		warn := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "iface")
		defaultRegistry, defaultErr = registryFromEnv(warn)
	})
	return defaultRegistry
}

// DefaultErr returns the configuration error encountered while building the
// default registry, or nil.
func DefaultErr() error {
	Default()
	return defaultErr
}

// registryFromEnv builds a registry from the environment. On a configuration
// error it logs a warning to logger and returns a default registry along
// with the error.
func registryFromEnv(logger *slog.Logger) (*Registry, error) {
	cfg, err := ConfigFromEnv()
	if err == nil {
		var opts []Option
		if opts, err = cfg.Options(); err == nil {
			return NewRegistry(opts...), nil
		}
	}
	logger.Warn("invalid interface registry configuration; using defaults", "error", err)
	return NewRegistry(), err
}

func orDefault(r *Registry) *Registry {
	if r == nil {
		return Default()
	}
	return r
}

// TypeOf returns the reflect.Type of T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Declare records that T implements ifaces in r (the default registry when
// r is nil).
func Declare[T any](r *Registry, ifaces ...*Interface) error {
	return orDefault(r).DeclareImplementation(reflect.TypeFor[T](), ifaces...)
}

// MustDeclare is like Declare but panics on error. It is intended for
// package-level variable initialization.
func MustDeclare[T any](r *Registry, ifaces ...*Interface) {
	if err := Declare[T](r, ifaces...); err != nil {
		panic(fmt.Sprintf("iface: %v", err))
	}
}

// DeclareGoInterface declares an interface named name with the methods of
// the Go interface type T.
func DeclareGoInterface[T any](r *Registry, name string) (*Interface, error) {
	return orDefault(r).DeclareGoInterface(name, reflect.TypeFor[T]())
}

// AdaptAs adapts obj to i and asserts the result to T.
func AdaptAs[T any](r *Registry, obj any, i *Interface) (T, error) {
	var zero T
	out, err := orDefault(r).Adapt(obj, i)
	if err != nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, &AdaptationError{
			Type:      reflect.TypeOf(obj),
			Interface: i.name,
			Err:       fmt.Errorf("adapted value %T is not a %s", out, reflect.TypeFor[T]()),
		}
	}
	return typed, nil
}

// DeclareInterface declares an interface in the default registry.
func DeclareInterface(name string, members ...Member) (*Interface, error) {
	return Default().DeclareInterface(name, members...)
}

// MustDeclareInterface is like DeclareInterface but panics on error.
//
//	var IShape = iface.MustDeclareInterface("IShape", iface.Method("Area"))
func MustDeclareInterface(name string, members ...Member) *Interface {
	i, err := DeclareInterface(name, members...)
	if err != nil {
		panic(fmt.Sprintf("iface: %v", err))
	}
	return i
}

// DeclareImplementation declares t in the default registry.
func DeclareImplementation(t reflect.Type, ifaces ...*Interface) error {
	return Default().DeclareImplementation(t, ifaces...)
}

// ImplementedInterfaces queries the default registry.
func ImplementedInterfaces(t reflect.Type) []*Interface {
	return Default().ImplementedInterfaces(t)
}

// AssertImplements asserts against the default registry.
func AssertImplements(obj any, i *Interface) error {
	return Default().AssertImplements(obj, i)
}

// AssertDeclaresInterface asserts against the default registry.
func AssertDeclaresInterface(t reflect.Type, i *Interface) error {
	return Default().AssertDeclaresInterface(t, i)
}

// RegisterAdapter registers an adapter in the default registry.
func RegisterAdapter(source reflect.Type, i *Interface, fn AdapterFunc) error {
	return Default().RegisterAdapter(source, i, fn)
}

// Adapt adapts obj using the default registry.
func Adapt(obj any, i *Interface) (any, error) {
	return Default().Adapt(obj, i)
}

// CreateStub creates a stub using the default registry.
func CreateStub(obj any, i *Interface) (*Stub, error) {
	return Default().CreateStub(obj, i)
}
