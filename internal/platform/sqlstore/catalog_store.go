package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/phrazzld/keysfinder-api/internal/store"
)

// Operation names recorded in data access errors.
const (
	opCountByName     = "count_keyboards_by_name"
	opSearchByName    = "search_keyboards_by_name"
	opCountKeyboards  = "count_keyboards"
	opListKeyboards   = "list_keyboards"
	opCountDetails    = "count_details_by_keyboard_id"
	opRandomKeyboards = "random_keyboards"
	opVariants        = "variants_by_keyboard_id"
	opDetails         = "details_by_keyboard_id"
	opComparisons     = "comparisons_by_detail_id"
	opPing            = "ping"
)

const keyboardColumns = "id, name, brand, model, image"

// catalogQueries holds the query templates for one dialect. Templates use ?
// placeholders; only dialect vocabulary is formatted into them.
type catalogQueries struct {
	countByName    string
	searchByName   string
	countKeyboards string
	listKeyboards  string
	countDetails   string
	random         string
	variants       string
	details        string
	comparisons    string
}

func newCatalogQueries(d Dialect) catalogQueries {
	nameMatch := fmt.Sprintf("name %s ? ESCAPE '%c'", d.LikeOperator(), likeEscape)

	return catalogQueries{
		countByName: "SELECT COUNT(*) FROM keyboard WHERE " + nameMatch,
		searchByName: "SELECT " + keyboardColumns + " FROM keyboard WHERE " + nameMatch +
			" ORDER BY id LIMIT ? OFFSET ?",
		countKeyboards: "SELECT COUNT(*) FROM keyboard",
		listKeyboards:  "SELECT " + keyboardColumns + " FROM keyboard ORDER BY id LIMIT ? OFFSET ?",
		countDetails:   "SELECT COUNT(*) FROM keyboard_details WHERE keyboard_id = ?",
		random:         "SELECT " + keyboardColumns + " FROM keyboard ORDER BY " + d.RandomFunc() + " LIMIT ?",
		variants: `SELECT kd.color, kd.id, k.name, k.image, k.model, k.brand
			FROM keyboard_details kd
			JOIN keyboard k ON kd.keyboard_id = k.id
			WHERE kd.keyboard_id = ?
			ORDER BY kd.id`,
		details: `SELECT k.id, k.name, k.brand, k.model, k.image, kd.id, kd.color
			FROM keyboard k
			LEFT JOIN keyboard_details kd ON k.id = kd.keyboard_id
			WHERE k.id = ?
			ORDER BY kd.id`,
		comparisons: `SELECT id, keyboard_details_id, switch_type, layout, connectivity, keycap_material, price
			FROM comparison_table
			WHERE keyboard_details_id = ?
			ORDER BY id`,
	}
}

// CatalogStore implements store.CatalogStore on top of database/sql.
// It works with any Dialect; all values are sent as bound parameters.
type CatalogStore struct {
	db      store.DBTX
	dialect Dialect
	queries catalogQueries
}

// NewCatalogStore creates a CatalogStore over db using the given dialect.
// The caller owns db and is responsible for closing it.
func NewCatalogStore(db store.DBTX, dialect Dialect) *CatalogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	return &CatalogStore{
		db:      db,
		dialect: dialect,
		queries: newCatalogQueries(dialect),
	}
}

// Ensure CatalogStore implements store.CatalogStore interface
var _ store.CatalogStore = (*CatalogStore)(nil)

// Dialect returns the dialect the store was built for.
func (s *CatalogStore) Dialect() Dialect {
	return s.dialect
}

// query runs a parameterised template and returns the open result set. The
// caller must close the rows; collect does so on every path.
func (s *CatalogStore) query(ctx context.Context, op, template string, args ...any) (*sql.Rows, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(template), args...)
	if err != nil {
		return nil, MapError(op, err)
	}
	return rows, nil
}

// count runs a single-value COUNT template.
func (s *CatalogStore) count(ctx context.Context, op, template string, args ...any) (int64, error) {
	rows, err := s.query(ctx, op, template, args...)
	if err != nil {
		return 0, err
	}

	counts, err := collect(rows, op, func(rows *sql.Rows) (int64, error) {
		var n int64
		err := rows.Scan(&n)
		return n, err
	})
	if err != nil {
		return 0, err
	}
	if len(counts) == 0 {
		return 0, nil
	}
	return counts[0], nil
}

// collect scans every row with scan and closes rows. The returned slice is
// never nil on success.
func collect[T any](rows *sql.Rows, op string, scan func(*sql.Rows) (T, error)) (items []T, err error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			items, err = nil, MapError(op, closeErr)
		}
	}()

	items = make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, MapError(op, scanErr)
		}
		items = append(items, item)
	}
	if iterErr := rows.Err(); iterErr != nil {
		return nil, MapError(op, iterErr)
	}
	return items, nil
}

// CountKeyboardsByName implements store.CatalogStore.CountKeyboardsByName
func (s *CatalogStore) CountKeyboardsByName(ctx context.Context, term string) (int64, error) {
	return s.count(ctx, opCountByName, s.queries.countByName, ContainsPattern(term))
}

// SearchKeyboardsByName implements store.CatalogStore.SearchKeyboardsByName
func (s *CatalogStore) SearchKeyboardsByName(
	ctx context.Context,
	term string,
	limit, offset int64,
) ([]domain.Keyboard, error) {
	rows, err := s.query(ctx, opSearchByName, s.queries.searchByName, ContainsPattern(term), limit, offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, opSearchByName, scanKeyboard)
}

// CountKeyboards implements store.CatalogStore.CountKeyboards
func (s *CatalogStore) CountKeyboards(ctx context.Context) (int64, error) {
	return s.count(ctx, opCountKeyboards, s.queries.countKeyboards)
}

// ListKeyboards implements store.CatalogStore.ListKeyboards
func (s *CatalogStore) ListKeyboards(ctx context.Context, limit, offset int64) ([]domain.Keyboard, error) {
	rows, err := s.query(ctx, opListKeyboards, s.queries.listKeyboards, limit, offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, opListKeyboards, scanKeyboard)
}

// CountDetailsByKeyboardID implements store.CatalogStore.CountDetailsByKeyboardID
func (s *CatalogStore) CountDetailsByKeyboardID(ctx context.Context, keyboardID int64) (int64, error) {
	return s.count(ctx, opCountDetails, s.queries.countDetails, keyboardID)
}

// RandomKeyboards implements store.CatalogStore.RandomKeyboards
func (s *CatalogStore) RandomKeyboards(ctx context.Context, n int) ([]domain.Keyboard, error) {
	rows, err := s.query(ctx, opRandomKeyboards, s.queries.random, n)
	if err != nil {
		return nil, err
	}
	return collect(rows, opRandomKeyboards, scanKeyboard)
}

// VariantsByKeyboardID implements store.CatalogStore.VariantsByKeyboardID
func (s *CatalogStore) VariantsByKeyboardID(
	ctx context.Context,
	keyboardID int64,
) ([]domain.KeyboardVariant, error) {
	rows, err := s.query(ctx, opVariants, s.queries.variants, keyboardID)
	if err != nil {
		return nil, err
	}
	return collect(rows, opVariants, func(rows *sql.Rows) (domain.KeyboardVariant, error) {
		var v domain.KeyboardVariant
		err := rows.Scan(&v.Color, &v.ID, &v.Name, &v.Image, &v.Model, &v.Brand)
		return v, err
	})
}

// DetailsByKeyboardID implements store.CatalogStore.DetailsByKeyboardID
func (s *CatalogStore) DetailsByKeyboardID(
	ctx context.Context,
	keyboardID int64,
) ([]domain.KeyboardDetail, error) {
	rows, err := s.query(ctx, opDetails, s.queries.details, keyboardID)
	if err != nil {
		return nil, err
	}
	return collect(rows, opDetails, func(rows *sql.Rows) (domain.KeyboardDetail, error) {
		var (
			d        domain.KeyboardDetail
			detailID sql.NullInt64
			color    sql.NullString
		)
		err := rows.Scan(&d.KeyboardID, &d.Name, &d.Brand, &d.Model, &d.Image, &detailID, &color)
		if err != nil {
			return d, err
		}
		d.ID = nullInt64Ptr(detailID)
		d.Color = nullStringPtr(color)
		return d, nil
	})
}

// ComparisonsByDetailID implements store.CatalogStore.ComparisonsByDetailID
func (s *CatalogStore) ComparisonsByDetailID(
	ctx context.Context,
	detailID int64,
) ([]domain.ComparisonEntry, error) {
	rows, err := s.query(ctx, opComparisons, s.queries.comparisons, detailID)
	if err != nil {
		return nil, err
	}
	return collect(rows, opComparisons, func(rows *sql.Rows) (domain.ComparisonEntry, error) {
		var c domain.ComparisonEntry
		var switchType, layout, connectivity, keycapMaterial sql.NullString
		var price sql.NullFloat64
		err := rows.Scan(
			&c.ID,
			&c.KeyboardDetailsID,
			&switchType,
			&layout,
			&connectivity,
			&keycapMaterial,
			&price,
		)
		if err != nil {
			return c, err
		}
		c.SwitchType = nullStringPtr(switchType)
		c.Layout = nullStringPtr(layout)
		c.Connectivity = nullStringPtr(connectivity)
		c.KeycapMaterial = nullStringPtr(keycapMaterial)
		if price.Valid {
			c.Price = &price.Float64
		}
		return c, nil
	})
}

// Ping implements store.CatalogStore.Ping
func (s *CatalogStore) Ping(ctx context.Context) error {
	pinger, ok := s.db.(store.Pinger)
	if !ok {
		return nil
	}
	return MapError(opPing, pinger.PingContext(ctx))
}

func scanKeyboard(rows *sql.Rows) (domain.Keyboard, error) {
	var k domain.Keyboard
	err := rows.Scan(&k.ID, &k.Name, &k.Brand, &k.Model, &k.Image)
	return k, err
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
