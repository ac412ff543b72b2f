package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
//
// Error handling principles:
// 1. Domain and store sentinels (domain.ErrInvalidCardCode, store.ErrDeckNotFound, ...)
// are wrapped, never replaced, so callers can use errors.Is
// 2. Wrapping uses the service-specific error type to record the operation
// 3. The API layer maps the underlying sentinels to HTTP status codes
var (
	// ErrMissingDependency is returned by constructors given a nil dependency.
	ErrMissingDependency = errors.New("missing required dependency")
)

// DeckServiceError is a custom error type for deck service errors.
type DeckServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for DeckServiceError.
func (e *DeckServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deck service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("deck service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DeckServiceError) Unwrap() error {
	return e.Err
}

// NewDeckServiceError creates a new DeckServiceError.
func NewDeckServiceError(operation, message string, err error) *DeckServiceError {
	return &DeckServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
