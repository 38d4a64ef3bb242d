package errors

import (
	"fmt"
	"io/fs"
)

// platformError is the concrete implementation of PlatformError.
// It is private to enforce construction through package functions.
type platformError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[CODE] message" or "[CODE] message: cause" if cause is present.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *platformError) Code() ErrorCode {
	return e.code
}

// Message returns the error message.
func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map.
// Returns nil if no context has been attached.
func (e *platformError) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *platformError) Unwrap() error {
	return e.cause
}

// Is matches the io/fs sentinel that corresponds to the error code, so
// errors.Is(err, fs.ErrNotExist) holds for a CodeNotFound error.
func (e *platformError) Is(target error) bool {
	switch e.code {
	case CodeNotFound:
		return target == fs.ErrNotExist
	case CodeAlreadyExists:
		return target == fs.ErrExist
	case CodeClosed:
		return target == fs.ErrClosed
	case CodeInvalidInput:
		return target == fs.ErrInvalid
	}
	return false
}
