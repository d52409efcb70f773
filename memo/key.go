package memo

import (
	"reflect"

	"github.com/jmgilman/foundation/errors"
)

// ErrUnhashableKey is returned when an interface-typed key holds a value
// that cannot be used as a map key.
var ErrUnhashableKey = errors.New(errors.CodeInvalidInput, "cache key is not comparable")

// keyChecker validates keys whose static type is an interface. Keys of any
// other comparable type are always valid.
type keyChecker[K comparable] struct {
	dynamic bool
}

func newKeyChecker[K comparable]() keyChecker[K] {
	return keyChecker[K]{dynamic: reflect.TypeFor[K]().Kind() == reflect.Interface}
}

func (c keyChecker[K]) check(key K) error {
	if !c.dynamic {
		return nil
	}
	v := reflect.ValueOf(any(key))
	if v.IsValid() && !v.Comparable() {
		return errors.WithContext(ErrUnhashableKey, "type", v.Type().String())
	}
	return nil
}
