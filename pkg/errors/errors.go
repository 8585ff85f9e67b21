// Package errors provides structured error types for cipherstack.
//
// Every failure the cipher engine can produce carries a machine-readable
// [Code], so the CLI can print a short reason and the HTTP API can map the
// failure to a status code without string matching.
//
// # Error Codes
//
//   - EMPTY_PIPELINE: no layers were supplied
//   - EMPTY_INPUT: the text to transform is empty
//   - INVALID_KEY: a layer key has the wrong length, format or alphabet
//   - INVALID_BLOCK_LENGTH: a feistel-block input is not a single 8-bit block
//   - UNSUPPORTED_ALGORITHM: a layer names an unknown algorithm
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidKey, "shift key %q is not an integer", key)
//	if errors.Is(err, errors.ErrCodeInvalidKey) {
//	    // Handle key error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Pipeline errors
	ErrCodeEmptyPipeline        Code = "EMPTY_PIPELINE"
	ErrCodeEmptyInput           Code = "EMPTY_INPUT"
	ErrCodeUnsupportedAlgorithm Code = "UNSUPPORTED_ALGORITHM"

	// Transform errors
	ErrCodeInvalidKey         Code = "INVALID_KEY"
	ErrCodeInvalidBlockLength Code = "INVALID_BLOCK_LENGTH"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidStack Code = "INVALID_STACK"
	ErrCodeInvalidPath  Code = "INVALID_PATH"

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
	return err.Error()
}

// IsInputError reports whether err was caused by caller-supplied input
// rather than by an internal fault.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeEmptyPipeline, ErrCodeEmptyInput, ErrCodeUnsupportedAlgorithm,
		ErrCodeInvalidKey, ErrCodeInvalidBlockLength,
		ErrCodeInvalidInput, ErrCodeInvalidStack, ErrCodeInvalidPath:
		return true
	}
	return false
}
