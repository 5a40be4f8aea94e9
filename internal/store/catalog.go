package store

import (
	"context"

	"github.com/phrazzld/keysfinder-api/internal/domain"
)

// CatalogStore defines read access to the keyboard catalog.
// Every method returns an empty, non-nil slice when nothing matches and a
// *QueryError (matching ErrDataAccess) on failure.
type CatalogStore interface {
	// CountKeyboardsByName counts keyboards whose name contains term.
	CountKeyboardsByName(ctx context.Context, term string) (int64, error)

	// SearchKeyboardsByName returns one page of keyboards whose name contains term,
	// ordered by id.
	SearchKeyboardsByName(ctx context.Context, term string, limit, offset int64) ([]domain.Keyboard, error)

	// CountKeyboards counts all keyboards.
	CountKeyboards(ctx context.Context) (int64, error)

	// ListKeyboards returns one page of all keyboards, ordered by id.
	ListKeyboards(ctx context.Context, limit, offset int64) ([]domain.Keyboard, error)

	// CountDetailsByKeyboardID counts the keyboard_details rows of a keyboard.
	CountDetailsByKeyboardID(ctx context.Context, keyboardID int64) (int64, error)

	// RandomKeyboards returns up to n keyboards in random order.
	RandomKeyboards(ctx context.Context, n int) ([]domain.Keyboard, error)

	// VariantsByKeyboardID returns the variants of a keyboard joined with its product fields.
	VariantsByKeyboardID(ctx context.Context, keyboardID int64) ([]domain.KeyboardVariant, error)

	// DetailsByKeyboardID returns the keyboard left-joined with its detail rows.
	// An unknown keyboard yields an empty slice.
	DetailsByKeyboardID(ctx context.Context, keyboardID int64) ([]domain.KeyboardDetail, error)

	// ComparisonsByDetailID returns the comparison rows of a keyboard variant.
	ComparisonsByDetailID(ctx context.Context, detailID int64) ([]domain.ComparisonEntry, error)

	// Ping verifies that the underlying database is reachable.
	Ping(ctx context.Context) error
}
