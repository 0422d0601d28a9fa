package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Per-file scan failures. These never escape the scanner; they become
	// the file's outcome.
	ErrTypeEmptyFile      ErrorType = "EMPTY_FILE"
	ErrTypeParsing        ErrorType = "PARSING"
	ErrTypeNotFound       ErrorType = "NOT_FOUND"
	ErrTypeColumnIndex    ErrorType = "COLUMN_INDEX"
	ErrTypeMissingColumns ErrorType = "MISSING_COLUMNS"
	ErrTypeUnexpected     ErrorType = "UNEXPECTED"

	// Pipeline failures, surfaced to the user as dialogs.
	ErrTypeUnsupportedFormat ErrorType = "UNSUPPORTED_FORMAT"
	ErrTypeStorage           ErrorType = "STORAGE"
	ErrTypeCanceled          ErrorType = "CANCELED"
	ErrTypeConfig            ErrorType = "CONFIG"
	ErrTypeValidation        ErrorType = "VALIDATION"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// TypeOf returns the ErrorType of the first AppError in err's chain, or
// ErrTypeUnexpected when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrTypeUnexpected
}

// IsType reports whether err carries an AppError of type t
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Type == t
}

// Helper functions for common error types

// NewEmptyFileError creates an error for a file with no header row
func NewEmptyFileError(path string) *AppError {
	return NewAppError(ErrTypeEmptyFile, "no columns to parse from file", nil).WithContext("path", path)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string, cause error) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", resource), cause)
}

// NewColumnIndexError creates an error for an out-of-range column access
func NewColumnIndexError(index, width int) *AppError {
	return NewAppError(ErrTypeColumnIndex,
		fmt.Sprintf("column %d out of range for %d columns", index, width), nil).
		WithContext("index", index).
		WithContext("width", width)
}

// NewMissingColumnsError creates an error for a table narrower than required
func NewMissingColumnsError(have, want int) *AppError {
	return NewAppError(ErrTypeMissingColumns,
		fmt.Sprintf("table has %d columns, need at least %d", have, want), nil).
		WithContext("have", have).
		WithContext("want", want)
}

// NewUnexpectedError wraps any failure that has no dedicated type
func NewUnexpectedError(cause error) *AppError {
	return NewAppError(ErrTypeUnexpected, "unexpected error", cause)
}

// NewUnsupportedFormatError creates an error for an unknown export extension
func NewUnsupportedFormatError(ext string) *AppError {
	return NewAppError(ErrTypeUnsupportedFormat, fmt.Sprintf("unsupported format %q", ext), nil).
		WithContext("extension", ext)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewCanceledError marks a dialog the user dismissed
func NewCanceledError(what string) *AppError {
	return NewAppError(ErrTypeCanceled, fmt.Sprintf("%s canceled", what), nil)
}

// NewAppValidationError creates a validation error for AppError type
func NewAppValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
