package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/phrazzld/keysfinder-api/internal/service"
	"github.com/phrazzld/keysfinder-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	dataErr := store.NewQueryError("count_keyboards", store.KindConnection, errors.New("dial tcp: refused"))

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "validation error",
			err:            domain.NewValidationError("search", msgSearchRequired, domain.ErrMissingParameter),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wrapped validation error",
			err: fmt.Errorf("parse: %w",
				domain.NewValidationError("keyboardId", msgKeyboardIDInvalid, domain.ErrInvalidID)),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "data access error",
			err:            dataErr,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "service error wrapping data access error",
			err:            service.NewCatalogServiceError("list_keyboards", "failed", dataErr),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation message is passed through",
			err:      domain.NewValidationError("keyboardId", msgKeyboardIDRequired, domain.ErrMissingParameter),
			expected: msgKeyboardIDRequired,
		},
		{
			name:     "validation error without message",
			err:      domain.NewValidationError("keyboardId", "", nil),
			expected: msgInternalServerError,
		},
		{
			name: "database details are hidden",
			err: store.NewQueryError("search_keyboards_by_name", store.KindStatement,
				errors.New("Error 1146: Table 'shop.keyboard' doesn't exist")),
			expected: msgInternalServerError,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: msgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}
