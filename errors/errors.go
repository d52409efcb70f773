package errors

import (
	stderrors "errors"
	"fmt"
)

// Coder is implemented by any error that reports an ErrorCode.
// GetCode consults the first Coder found in an error chain.
type Coder interface {
	Code() ErrorCode
}

// Error extends the standard error interface with a code, a message and
// context metadata.
type Error interface {
	error
	Coder

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a copy.
	// Returns nil if no context has been attached.
	Context() map[string]any

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}

// codedError is the concrete implementation of Error.
// It is private to enforce construction through package functions.
type codedError struct {
	code    ErrorCode
	message string
	context map[string]any
	cause   error

	// origin is the Error this one was derived from by adding context.
	// It takes part in Is but not in Unwrap or the message.
	origin error
}

// Error returns "[CODE] message" or "[CODE] message: cause".
func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *codedError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *codedError) Message() string {
	return e.message
}

// Context returns a copy of the context map.
func (e *codedError) Context() map[string]any {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error.
func (e *codedError) Unwrap() error {
	return e.cause
}

// Is reports whether target is the error this one was derived from, so
// sentinels keep matching after context is attached.
func (e *codedError) Is(target error) bool {
	return e.origin != nil && stderrors.Is(e.origin, target)
}

func copyContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return nil
	}
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
