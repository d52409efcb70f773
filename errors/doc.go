// Package errors provides structured error handling for the foundation
// libraries.
//
// It extends Go's standard error handling with string error codes and
// context metadata while remaining fully compatible with the standard
// library (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeNotFound, "file not found")
//	err := errors.Newf(errors.CodeInvalidInput, "invalid member name %q", name)
//
// Wrapping errors:
//
//	if err := fs.Rename(src, dst); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to move file")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "path", src)
//
// # Codes From Other Error Types
//
// Domain packages are free to define their own error structs. Any error in
// a chain that implements Coder reports its code through GetCode, so callers
// can branch on codes without caring about the concrete type:
//
//	switch errors.GetCode(err) {
//	case errors.CodeBadImplementation:
//	    // a type failed its interface check
//	case errors.CodeAdaptation:
//	    // no adapter could produce a conforming value
//	}
//
// # JSON
//
// ToJSON flattens any error into an ErrorResponse. The wrapped chain is
// never serialized.
package errors
