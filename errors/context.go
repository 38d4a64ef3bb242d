package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new PlatformError with the context field added.
// Existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeNotFound, "open failed")
//	err = errors.WithContext(err, "path", "Save01.lsd")
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}

	platformErr := asPlatformError(err)

	newContext := make(map[string]interface{})
	for k, v := range platformErr.Context() {
		newContext[k] = v
	}
	newContext[key] = value

	return &platformError{
		code:    platformErr.Code(),
		message: platformErr.Message(),
		context: newContext,
		cause:   platformErr.Unwrap(),
	}
}

// asPlatformError returns the first PlatformError in err's chain or wraps
// err as one with CodeUnknown.
func asPlatformError(err error) PlatformError {
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		return platformErr
	}
	return &platformError{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}
