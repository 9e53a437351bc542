// Package errors provides structured error types for the panelgrid application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the begin/set/end commands
//   - Machine-readable error codes for programmatic handling
//   - Distinct process exit statuses per error category
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Option/configuration validation failures
//   - LAYOUT_*: Geometry computation failures
//   - STATE_*: Missing or inconsistent session state
//   - IO_*: Durable file store failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGrid, "bad grid spec: %s", arg)
//	if errors.Is(err, errors.ErrCodeInvalidGrid) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors, caught before any computation or state mutation.
	ErrCodeInvalidGrid      Code = "INVALID_GRID"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidMargin    Code = "INVALID_MARGIN"
	ErrCodeInvalidTag       Code = "INVALID_TAG"
	ErrCodeInvalidSharing   Code = "INVALID_SHARING"
	ErrCodeInvalidUnit      Code = "INVALID_UNIT"
	ErrCodeInvalidPanel     Code = "INVALID_PANEL"

	// Layout errors, caught during dimension resolution or cursor movement.
	ErrCodeNonPositiveDim Code = "LAYOUT_NON_POSITIVE_DIMENSION"
	ErrCodeNoMorePanels   Code = "LAYOUT_NO_MORE_PANELS"

	// State errors, caught when session artifacts are missing.
	ErrCodeNoSession Code = "STATE_NO_SESSION"

	// I/O errors from the durable file store.
	ErrCodeIO Code = "IO_ERROR"
)

// Exit statuses for the CLI surface. Zero is success; each error category
// maps to its own non-zero status so driver scripts can tell a parse failure
// from a missing session from a layout failure.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitSession = 3
	ExitLayout  = 4
	ExitIO      = 5
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

// ExitCode maps an error to the process exit status for its category.
// Unclassified errors count as usage failures: flag parsing is the only
// place the commands surface errors without wrapping them first.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetCode(err) {
	case ErrCodeNoSession:
		return ExitSession
	case ErrCodeNonPositiveDim, ErrCodeNoMorePanels:
		return ExitLayout
	case ErrCodeIO:
		return ExitIO
	default:
		return ExitUsage
	}
}
