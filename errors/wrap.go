package errors

import "fmt"

// Wrap wraps err with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := fs.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "failed to read file")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, message: message, cause: err}
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches context metadata in one step.
// The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := copyFile(src, dst); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeIO, "copy failed", map[string]any{
//	        "src": src,
//	        "dst": dst,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]any) Error {
	if err == nil {
		return nil
	}
	return &codedError{
		code:    code,
		message: message,
		context: copyContext(ctx),
		cause:   err,
	}
}
