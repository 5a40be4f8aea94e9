package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/phrazzld/keysfinder-api/internal/store"
)

// Client-facing messages.
const (
	msgInternalServerError = "Internal Server Error"
	msgServiceUnavailable  = "Service Unavailable"
	msgSearchRequired      = "Search term is required"
	msgKeyboardIDRequired  = "Keyboard ID is required"
	msgKeyboardIDInvalid   = "Keyboard ID must be a positive integer"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Validation failures are client errors; everything else, data access
// failures included, is a server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrDataAccess):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message that may be shown to clients for
// err. Only validation messages are passed through.
func GetSafeErrorMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Message != "" {
		return verr.Message
	}
	return msgInternalServerError
}
