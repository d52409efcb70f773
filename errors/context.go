package errors

// WithContext adds a single context field to an error.
// Existing fields are preserved.
//
// If err is not an Error it is converted to one, keeping any code it
// reports through Coder. Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeIO, "write failed")
//	err = errors.WithContext(err, "path", "out/report.txt")
func WithContext(err error, key string, value any) Error {
	return WithContextMap(err, map[string]any{key: value})
}

// WithContextMap merges ctx into the error's context. New fields override
// existing fields with the same key. The result still matches err with Is.
//
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]any) Error {
	if err == nil {
		return nil
	}

	base := asError(err)
	merged := base.Context()
	if merged == nil {
		merged = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	derived := &codedError{
		code:    base.Code(),
		message: base.Message(),
		context: merged,
		cause:   base.Unwrap(),
	}
	if _, ok := err.(Error); ok {
		derived.origin = err
	}
	return derived
}

// asError returns err as an Error. Errors that are not already an Error are
// wrapped with their reported code (CodeUnknown if none) and their own text
// as the message.
func asError(err error) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return &codedError{
		code:    GetCode(err),
		message: err.Error(),
		cause:   err,
	}
}
