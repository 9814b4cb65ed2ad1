// Package errors provides standardized error types and helpers for the quill codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// TypeMismatchError represents a value whose runtime type does not fit
// the shape an operation accepts
type TypeMismatchError struct {
	Expected string      // Description of the accepted shapes
	Value    interface{} // The offending value
	Err      error       // Underlying error, if any
}

func (e *TypeMismatchError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("type mismatch: got %T, want %s", e.Value, e.Expected)
	}
	return fmt.Sprintf("type mismatch: got %T", e.Value)
}

func (e *TypeMismatchError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// NewTypeMismatch creates a TypeMismatchError
func NewTypeMismatch(expected string, value interface{}) *TypeMismatchError {
	return &TypeMismatchError{
		Expected: expected,
		Value:    value,
	}
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
