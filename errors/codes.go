package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a path resolved to nothing.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a resource already exists and cannot be created again.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Stream errors.

	// CodeUnsupported indicates the backend or buffer does not provide the operation.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// CodeClosed indicates an operation on a closed stream or buffer.
	CodeClosed ErrorCode = "CLOSED"

	// CodeShortWrite indicates fewer bytes were accepted than requested.
	// The stream that produced it refuses all further writes.
	CodeShortWrite ErrorCode = "SHORT_WRITE"

	// CodeIO indicates a low-level read, write or seek failed.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeBridge indicates the host bridge returned an invalid handle or descriptor.
	CodeBridge ErrorCode = "BRIDGE_ERROR"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
