package domain

import (
	"errors"
	"fmt"
)

// Domain errors returned by card and deck operations.
// Callers check them with errors.Is; the values are wrapped with
// operation-specific detail where useful.
var (
	// ErrInvalidCardCode is returned when a card code does not decode to a
	// valid rank and suit.
	ErrInvalidCardCode = errors.New("invalid card code")

	// ErrInvalidDrawCount is returned when a draw asks for zero or fewer cards.
	ErrInvalidDrawCount = errors.New("draw count must be positive")

	// ErrInsufficientCards is returned when a draw asks for more cards than
	// the deck has remaining.
	ErrInsufficientCards = errors.New("not enough cards remaining")
)

// CardCodeError identifies the code that failed to decode.
type CardCodeError struct {
	Code string
}

// Error implements the error interface for CardCodeError.
func (e *CardCodeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidCardCode, e.Code)
}

// Unwrap returns ErrInvalidCardCode so callers can use errors.Is.
func (e *CardCodeError) Unwrap() error {
	return ErrInvalidCardCode
}

// DrawError describes a rejected draw request.
type DrawError struct {
	Requested int
	Remaining int
	Err       error
}

// Error implements the error interface for DrawError.
func (e *DrawError) Error() string {
	return fmt.Sprintf("%v: requested %d, remaining %d", e.Err, e.Requested, e.Remaining)
}

// Unwrap returns the underlying sentinel error.
func (e *DrawError) Unwrap() error {
	return e.Err
}
