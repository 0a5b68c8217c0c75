package mythoji

import (
	"errors"
	"fmt"
)

// Code categorizes resolution errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates a category or modifier value outside
	// its closed set
	CodeInvalidArgument Code = "invalid_argument"

	// CodeUnsupportedModifier indicates a modifier for an axis the
	// category does not define
	CodeUnsupportedModifier Code = "unsupported_modifier"

	// CodeConflictingModifier indicates two or more modifiers supplied
	// for the same axis
	CodeConflictingModifier Code = "conflicting_modifier"
)

// Error represents a resolution error with a code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	return e.Message
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error checking functions

// IsCode checks if the error carries a specific code
func IsCode(err error, code Code) bool {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Code == code
	}
	return false
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return IsCode(err, CodeInvalidArgument)
}

// IsUnsupportedModifier checks if the error is an unsupported modifier error
func IsUnsupportedModifier(err error) bool {
	return IsCode(err, CodeUnsupportedModifier)
}

// IsConflictingModifier checks if the error is a conflicting modifier error
func IsConflictingModifier(err error) bool {
	return IsCode(err, CodeConflictingModifier)
}

// ErrorCode returns the error code
func ErrorCode(err error) Code {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Code
	}
	return CodeUnknown
}

// ErrorMeta returns the error metadata
func ErrorMeta(err error) map[string]any {
	var mErr *Error
	if errors.As(err, &mErr) {
		return mErr.Meta
	}
	return nil
}
