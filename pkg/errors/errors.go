// Package errors provides structured error types for stackbadge.
//
// Every failure surfaced by the rendering core carries a machine-readable
// code, so that callers (the CLI, batch runs, library users) can branch on
// the kind of failure without parsing messages.
//
// # Error Codes
//
//   - INVALID_*: malformed input (colors, font tables, manifests)
//   - UNKNOWN_FONT, DUPLICATE_FONT: font registry failures
//   - UNSUPPORTED_STYLE: a style outside the five supported variants
//   - NOT_FOUND: a named resource (icon, file) does not exist
//   - INTERNAL_ERROR: unexpected internal failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidColor, "cannot parse color %q", text)
//	if errors.Is(err, errors.ErrCodeInvalidColor) {
//	    // fall back to a default color
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFontTable, ioErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidColor     Code = "INVALID_COLOR"
	ErrCodeInvalidFontTable Code = "INVALID_FONT_TABLE"
	ErrCodeInvalidManifest  Code = "INVALID_MANIFEST"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Registry errors
	ErrCodeUnknownFont   Code = "UNKNOWN_FONT"
	ErrCodeDuplicateFont Code = "DUPLICATE_FONT"

	// Layout errors
	ErrCodeUnsupportedStyle Code = "UNSUPPORTED_STYLE"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeIconNotFound Code = "ICON_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	return err.Error()
}

// ValidationError reports a field-level problem in user-supplied configuration,
// such as a batch manifest entry.
type ValidationError struct {
	Field   string // Dotted path of the offending field (e.g. "badges[2].style")
	Message string
	Cause   error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, cause error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Cause: cause}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying validator error, if any.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Code returns the error code for this error type.
func (e *ValidationError) Code() Code {
	return ErrCodeInvalidManifest
}
