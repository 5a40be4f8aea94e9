package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/phrazzld/keysfinder-api/internal/platform/logger"
	"github.com/phrazzld/keysfinder-api/internal/store"
)

// KeyboardPage is one page of keyboards plus the number of pages available.
type KeyboardPage struct {
	Keyboards  []domain.Keyboard
	TotalPages int64
	Page       domain.PageRequest
}

// CatalogOptions holds the limits applied by the catalog service.
type CatalogOptions struct {
	DefaultPageSize  int
	MaxPageSize      int
	ListPageSize     int
	RandomSampleSize int
}

// DefaultCatalogOptions returns the stock catalog limits.
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		DefaultPageSize:  15,
		MaxPageSize:      100,
		ListPageSize:     10,
		RandomSampleSize: 9,
	}
}

// CatalogService provides the read operations of the keyboard catalog.
type CatalogService interface {
	// SearchKeyboards returns one page of keyboards whose name contains term.
	// A zero page or pageSize selects the default.
	SearchKeyboards(ctx context.Context, term string, page, pageSize int) (*KeyboardPage, error)

	// ListKeyboards returns one page of the whole catalog.
	ListKeyboards(ctx context.Context, page, pageSize int) (*KeyboardPage, error)

	// HasDuplicateVariants reports whether a keyboard has more than one variant row.
	HasDuplicateVariants(ctx context.Context, keyboardID int64) (bool, error)

	// RandomKeyboards returns a random sample of keyboards.
	RandomKeyboards(ctx context.Context) ([]domain.Keyboard, error)

	// GetVariants returns the variants of a keyboard.
	GetVariants(ctx context.Context, keyboardID int64) ([]domain.KeyboardVariant, error)

	// GetKeyboardDetails returns a keyboard joined with its variant details.
	GetKeyboardDetails(ctx context.Context, keyboardID int64) ([]domain.KeyboardDetail, error)

	// GetComparisons returns the comparison rows of a keyboard variant.
	GetComparisons(ctx context.Context, detailID int64) ([]domain.ComparisonEntry, error)

	// Ping checks that the catalog store is reachable.
	Ping(ctx context.Context) error
}

// CatalogServiceError wraps errors from the catalog service with context.
type CatalogServiceError struct {
	// Operation is the operation that failed (e.g., "search_keyboards")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() error {
	return e.Err
}

// NewCatalogServiceError creates a new CatalogServiceError.
func NewCatalogServiceError(operation, message string, err error) *CatalogServiceError {
	return &CatalogServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

type catalogServiceImpl struct {
	store  store.CatalogStore
	opts   CatalogOptions
	logger *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if the store is nil or the options are inconsistent.
func NewCatalogService(
	catalogStore store.CatalogStore,
	opts CatalogOptions,
	logger *slog.Logger,
) (CatalogService, error) {
	if catalogStore == nil {
		return nil, NewCatalogServiceError("create_service", "catalogStore cannot be nil", nil)
	}
	if opts.MaxPageSize < 1 ||
		opts.DefaultPageSize < 1 || opts.DefaultPageSize > opts.MaxPageSize ||
		opts.ListPageSize < 1 || opts.ListPageSize > opts.MaxPageSize ||
		opts.RandomSampleSize < 1 {
		return nil, NewCatalogServiceError("create_service", fmt.Sprintf("invalid options %+v", opts), nil)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		store:  catalogStore,
		opts:   opts,
		logger: logger.With("component", "catalog_service"),
	}, nil
}

// SearchKeyboards counts the matches first; a count failure short-circuits
// before the page query is issued.
func (s *catalogServiceImpl) SearchKeyboards(
	ctx context.Context,
	term string,
	page, pageSize int,
) (*KeyboardPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if term == "" {
		return nil, domain.NewValidationError("search", "Search term is required", domain.ErrMissingParameter)
	}

	req := domain.NewPageRequest(page, pageSize, s.opts.DefaultPageSize, s.opts.MaxPageSize)

	count, err := s.store.CountKeyboardsByName(ctx, term)
	if err != nil {
		return nil, NewCatalogServiceError("search_keyboards", "failed to count matches", err)
	}

	keyboards, err := s.store.SearchKeyboardsByName(ctx, term, req.Limit(), req.Offset())
	if err != nil {
		return nil, NewCatalogServiceError("search_keyboards", "failed to fetch page", err)
	}

	result := &KeyboardPage{
		Keyboards:  keyboards,
		TotalPages: domain.TotalPages(count, req.PageSize),
		Page:       req,
	}

	log.Debug("keyboard search completed",
		slog.Int("page", req.Page),
		slog.Int("page_size", req.PageSize),
		slog.Int64("matches", count),
		slog.Int("returned", len(keyboards)))

	return result, nil
}

func (s *catalogServiceImpl) ListKeyboards(ctx context.Context, page, pageSize int) (*KeyboardPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req := domain.NewPageRequest(page, pageSize, s.opts.ListPageSize, s.opts.MaxPageSize)

	count, err := s.store.CountKeyboards(ctx)
	if err != nil {
		return nil, NewCatalogServiceError("list_keyboards", "failed to count keyboards", err)
	}

	keyboards, err := s.store.ListKeyboards(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, NewCatalogServiceError("list_keyboards", "failed to fetch page", err)
	}

	log.Debug("keyboard list completed",
		slog.Int("page", req.Page),
		slog.Int("page_size", req.PageSize),
		slog.Int64("total", count))

	return &KeyboardPage{
		Keyboards:  keyboards,
		TotalPages: domain.TotalPages(count, req.PageSize),
		Page:       req,
	}, nil
}

// HasDuplicateVariants is true only when the keyboard has two or more
// detail rows; a single variant is not a duplicate.
func (s *catalogServiceImpl) HasDuplicateVariants(ctx context.Context, keyboardID int64) (bool, error) {
	count, err := s.store.CountDetailsByKeyboardID(ctx, keyboardID)
	if err != nil {
		return false, NewCatalogServiceError("check_duplicates", "failed to count variants", err)
	}
	return count > 1, nil
}

func (s *catalogServiceImpl) RandomKeyboards(ctx context.Context) ([]domain.Keyboard, error) {
	keyboards, err := s.store.RandomKeyboards(ctx, s.opts.RandomSampleSize)
	if err != nil {
		return nil, NewCatalogServiceError("random_keyboards", "failed to sample keyboards", err)
	}
	return keyboards, nil
}

func (s *catalogServiceImpl) GetVariants(ctx context.Context, keyboardID int64) ([]domain.KeyboardVariant, error) {
	variants, err := s.store.VariantsByKeyboardID(ctx, keyboardID)
	if err != nil {
		return nil, NewCatalogServiceError("get_variants", "failed to fetch variants", err)
	}
	return variants, nil
}

func (s *catalogServiceImpl) GetKeyboardDetails(
	ctx context.Context,
	keyboardID int64,
) ([]domain.KeyboardDetail, error) {
	details, err := s.store.DetailsByKeyboardID(ctx, keyboardID)
	if err != nil {
		return nil, NewCatalogServiceError("get_keyboard_details", "failed to fetch details", err)
	}
	return details, nil
}

func (s *catalogServiceImpl) GetComparisons(
	ctx context.Context,
	detailID int64,
) ([]domain.ComparisonEntry, error) {
	entries, err := s.store.ComparisonsByDetailID(ctx, detailID)
	if err != nil {
		return nil, NewCatalogServiceError("get_comparisons", "failed to fetch comparisons", err)
	}
	return entries, nil
}

func (s *catalogServiceImpl) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return NewCatalogServiceError("ping", "catalog store unreachable", err)
	}
	return nil
}
