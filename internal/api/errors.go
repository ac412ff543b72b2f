package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/deck-api/internal/api/shared"
	"github.com/phrazzld/deck-api/internal/domain"
	"github.com/phrazzld/deck-api/internal/store"
)

// ErrInvalidCountParam is returned when the draw count query parameter is
// missing or not an integer.
var ErrInvalidCountParam = errors.New("invalid count parameter")

const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrDeckNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidCardCode),
		errors.Is(err, domain.ErrInvalidDrawCount),
		errors.Is(err, domain.ErrInsufficientCards),
		errors.Is(err, ErrInvalidCountParam):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var codeErr *domain.CardCodeError
	switch {
	case errors.As(err, &codeErr):
		return fmt.Sprintf("Invalid card code: %s", codeErr.Code)

	case errors.Is(err, domain.ErrInvalidCardCode):
		return "Invalid card code"

	case errors.Is(err, domain.ErrInvalidDrawCount):
		return "Draw count must be positive"

	case errors.Is(err, domain.ErrInsufficientCards):
		return "Not enough cards remaining"

	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, ErrInvalidCountParam):
		return "Invalid count parameter"

	default:
		return genericErrorMessage
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'DrawRequest.Count' Error:Field validation for 'Count' failed on the 'numeric' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "numeric":
		return "must be an integer"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err: the status comes from
// MapErrorToStatusCode and the body carries the safe message. When the error
// is unrecognised and fallbackMsg is non-empty, fallbackMsg is sent instead of
// the generic message. The detailed error is logged in redacted form.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMsg string) {
	status := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if message == genericErrorMessage && fallbackMsg != "" {
		message = fallbackMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
