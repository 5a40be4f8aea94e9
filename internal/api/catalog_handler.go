package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/keysfinder-api/internal/api/shared"
	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/phrazzld/keysfinder-api/internal/platform/logger"
	"github.com/phrazzld/keysfinder-api/internal/service"
	"github.com/phrazzld/keysfinder-api/internal/store"
)

// DefaultHealthTimeout bounds the database ping behind GET /health.
const DefaultHealthTimeout = 2 * time.Second

// FailureRecorder is notified of every data access failure that reaches the
// HTTP boundary, keyed by failure kind.
type FailureRecorder interface {
	RecordDataAccessFailure(kind string)
}

// HandlerOption configures a CatalogHandler.
type HandlerOption func(*CatalogHandler)

// WithFailureRecorder reports data access failures to rec.
func WithFailureRecorder(rec FailureRecorder) HandlerOption {
	return func(h *CatalogHandler) {
		h.failures = rec
	}
}

// WithHealthTimeout overrides DefaultHealthTimeout.
func WithHealthTimeout(d time.Duration) HandlerOption {
	return func(h *CatalogHandler) {
		if d > 0 {
			h.healthTimeout = d
		}
	}
}

// CatalogHandler handles the keyboard catalog HTTP requests.
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *slog.Logger
	failures       FailureRecorder
	healthTimeout  time.Duration
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	catalogService service.CatalogService,
	logger *slog.Logger,
	opts ...HandlerOption,
) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &CatalogHandler{
		catalogService: catalogService,
		logger:         logger.With("component", "catalog_handler"),
		healthTimeout:  DefaultHealthTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Search handles GET /search?search=&page=&pageSize= requests.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	term, err := parseSearchTerm(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	page, err := h.catalogService.SearchKeyboards(
		r.Context(),
		term,
		shared.QueryInt(r, paramPage),
		shared.QueryInt(r, paramPageSize),
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SearchResponse{
		Data:       keyboardsToResponse(page.Keyboards),
		TotalPages: page.TotalPages,
	})
}

// CheckDuplicateKeyboardID handles GET /checkDuplicateKeyboardId?keyboardId= requests.
func (h *CatalogHandler) CheckDuplicateKeyboardID(w http.ResponseWriter, r *http.Request) {
	raw, keyboardID, err := parseKeyboardID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	hasDuplicates, err := h.catalogService.HasDuplicateVariants(r.Context(), keyboardID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DuplicateCheckResponse{
		KeyboardID:    raw,
		HasDuplicates: hasDuplicates,
	})
}

// Random handles GET /random requests.
func (h *CatalogHandler) Random(w http.ResponseWriter, r *http.Request) {
	keyboards, err := h.catalogService.RandomKeyboards(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RandomResponse{Data: keyboardsToResponse(keyboards)})
}

// GetKeyboards handles GET /getKeyboards?keyboardId= requests. It lists the
// variants of one keyboard.
func (h *CatalogHandler) GetKeyboards(w http.ResponseWriter, r *http.Request) {
	_, keyboardID, err := parseKeyboardID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	variants, err := h.catalogService.GetVariants(r.Context(), keyboardID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, variantsToResponse(variants))
}

// GetKeyboardDetailByID handles GET /getKeyboardDetailById?keyboardId= requests.
func (h *CatalogHandler) GetKeyboardDetailByID(w http.ResponseWriter, r *http.Request) {
	_, keyboardID, err := parseKeyboardID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	details, err := h.catalogService.GetKeyboardDetails(r.Context(), keyboardID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, detailsToResponse(details))
}

// GetComparisonsByDetailID handles GET /getComparisonsByDetailId?keyboardId=
// requests. The parameter carries a keyboard_details id despite its name.
func (h *CatalogHandler) GetComparisonsByDetailID(w http.ResponseWriter, r *http.Request) {
	_, detailID, err := parseKeyboardID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	entries, err := h.catalogService.GetComparisons(r.Context(), detailID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comparisonsToResponse(entries))
}

// KeyboardList handles GET /keyboardList?pageNumber=&pageSize= requests.
func (h *CatalogHandler) KeyboardList(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalogService.ListKeyboards(
		r.Context(),
		shared.QueryInt(r, paramPageNumber),
		shared.QueryInt(r, paramPageSize),
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, KeyboardListResponse{
		Data:       keyboardsToResponse(page.Keyboards),
		TotalPages: page.TotalPages,
	})
}

// Health handles GET /health requests.
func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.healthTimeout)
	defer cancel()

	if err := h.catalogService.Ping(ctx); err != nil {
		h.recordFailure(err)
		logger.FromContextOrDefault(r.Context(), h.logger).Warn("health check failed",
			slog.String("failure_kind", string(store.FailureKindOf(err))))
		shared.RespondWithText(w, r, http.StatusServiceUnavailable, msgServiceUnavailable)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, "OK")
}

// handleError writes the response for err. Validation failures are sent as
// plain text with their message; everything else becomes an opaque 500.
func (h *CatalogHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	if errors.Is(err, domain.ErrValidation) {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("rejected request",
			slog.String("path", r.URL.Path),
			slog.String("reason", GetSafeErrorMessage(err)))
		shared.RespondWithText(w, r, status, GetSafeErrorMessage(err))
		return
	}

	h.recordFailure(err)

	var svcErr *service.CatalogServiceError
	if errors.As(err, &svcErr) {
		r = r.WithContext(logger.WithLogger(r.Context(),
			logger.FromContextOrDefault(r.Context(), h.logger).With(
				slog.String("operation", svcErr.Operation),
				slog.String("failure_kind", string(store.FailureKindOf(err))))))
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

func (h *CatalogHandler) recordFailure(err error) {
	if h.failures == nil || !store.IsDataAccessError(err) {
		return
	}
	h.failures.RecordDataAccessFailure(string(store.FailureKindOf(err)))
}
