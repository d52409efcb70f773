package errors

import "fmt"

// New creates a new Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "interface not found")
func New(code ErrorCode, message string) Error {
	return &codedError{code: code, message: message}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "member %q declared twice", name)
func Newf(code ErrorCode, format string, args ...any) Error {
	return &codedError{code: code, message: fmt.Sprintf(format, args...)}
}
