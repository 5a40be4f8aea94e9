package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/keysfinder-api/internal/api/shared"
	"github.com/phrazzld/keysfinder-api/internal/domain"
)

// Query parameter names.
const (
	paramSearch     = "search"
	paramPage       = "page"
	paramPageSize   = "pageSize"
	paramPageNumber = "pageNumber"
	paramKeyboardID = "keyboardId"
)

type searchQuery struct {
	Search string `query:"search" validate:"required"`
}

type keyboardIDQuery struct {
	KeyboardID string `query:"keyboardId" validate:"required"`
}

// parseSearchTerm extracts the required search parameter.
func parseSearchTerm(r *http.Request) (string, error) {
	q := searchQuery{Search: shared.QueryParam(r, paramSearch)}
	if err := shared.ValidateRequest(q); err != nil {
		return "", domain.NewValidationError(paramSearch, msgSearchRequired, domain.ErrMissingParameter)
	}
	return q.Search, nil
}

// parseKeyboardID extracts the required keyboardId parameter and returns both
// the raw value and its integer form.
func parseKeyboardID(r *http.Request) (string, int64, error) {
	q := keyboardIDQuery{KeyboardID: strings.TrimSpace(shared.QueryParam(r, paramKeyboardID))}
	if err := shared.ValidateRequest(q); err != nil {
		return "", 0, domain.NewValidationError(paramKeyboardID, msgKeyboardIDRequired, domain.ErrMissingParameter)
	}

	id, err := strconv.ParseInt(q.KeyboardID, 10, 64)
	if err != nil || id < 1 {
		return "", 0, domain.NewValidationError(paramKeyboardID, msgKeyboardIDInvalid, domain.ErrInvalidID)
	}
	return shared.QueryParam(r, paramKeyboardID), id, nil
}
