package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Interface errors.

	// CodeDuplicateInterface indicates an interface name was declared twice
	// with different member sets.
	CodeDuplicateInterface ErrorCode = "DUPLICATE_INTERFACE"

	// CodeBadImplementation indicates a type claimed an interface it does not
	// structurally satisfy.
	CodeBadImplementation ErrorCode = "BAD_IMPLEMENTATION"

	// CodeInterface indicates conformance was asserted but not satisfied, or a
	// member outside the contract was accessed.
	CodeInterface ErrorCode = "INTERFACE_ERROR"

	// CodeAdaptation indicates no conforming value could be produced for an
	// interface.
	CodeAdaptation ErrorCode = "ADAPTATION_FAILED"

	// Filesystem errors.

	// CodeIO indicates a filesystem read or write failed.
	CodeIO ErrorCode = "IO_ERROR"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
