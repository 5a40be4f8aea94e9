// Package domain defines the core catalog entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when request input fails validation.
	// It is usually carried by a *ValidationError naming the parameter.
	ErrValidation = errors.New("validation failed")

	// ErrMissingParameter is returned when a required query parameter is absent or empty.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidID is returned when an ID is not a positive integer.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError describes a rejected request parameter. Message is safe to
// return to clients verbatim.
type ValidationError struct {
	Param   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given parameter.
func NewValidationError(param, message string, err error) *ValidationError {
	return &ValidationError{
		Param:   param,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Param, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Param, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
