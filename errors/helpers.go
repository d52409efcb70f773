package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var badImpl *iface.BadImplementationError
//	if errors.As(err, &badImpl) {
//	    for _, v := range badImpl.Violations { ... }
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling Unwrap on err, if any.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// GetCode extracts the ErrorCode from the first Coder in err's chain.
// Returns CodeUnknown if err is nil or no error in the chain reports a code.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // Handle not found
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var coder Coder
	if stderrors.As(err, &coder) {
		return coder.Code()
	}

	return CodeUnknown
}

// HasCode reports whether any error in err's chain reports code.
// Unlike GetCode it keeps searching past the first Coder.
func HasCode(err error, code ErrorCode) bool {
	found := false
	walk(err, func(e error) bool {
		if c, ok := e.(Coder); ok && c.Code() == code {
			found = true
			return false
		}
		return true
	})
	return found
}

// walk visits err and its chain depth-first, including joined errors,
// until visit returns false.
func walk(err error, visit func(error) bool) bool {
	if err == nil {
		return true
	}
	if !visit(err) {
		return false
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if !walk(e, visit) {
				return false
			}
		}
	case interface{ Unwrap() error }:
		return walk(u.Unwrap(), visit)
	}
	return true
}
