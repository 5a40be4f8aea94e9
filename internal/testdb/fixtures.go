package testdb

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// InsertKeyboard stores k and returns it with its assigned ID. Empty brand,
// model and image fields are filled with placeholders.
func InsertKeyboard(t testing.TB, db *sql.DB, k domain.Keyboard) domain.Keyboard {
	t.Helper()

	if k.Brand == "" {
		k.Brand = "Generic"
	}
	if k.Model == "" {
		k.Model = "M1"
	}
	if k.Image == "" {
		k.Image = "https://img.example/keyboard.png"
	}

	var args []any
	query := "INSERT INTO keyboard (name, brand, model, image) VALUES (?, ?, ?, ?)"
	args = append(args, k.Name, k.Brand, k.Model, k.Image)
	if k.ID != 0 {
		query = "INSERT INTO keyboard (id, name, brand, model, image) VALUES (?, ?, ?, ?, ?)"
		args = append([]any{k.ID}, args...)
	}

	k.ID = insert(t, db, query, args...)
	return k
}

// InsertKeyboards stores one keyboard per name and returns them in order.
func InsertKeyboards(t testing.TB, db *sql.DB, names ...string) []domain.Keyboard {
	t.Helper()

	keyboards := make([]domain.Keyboard, 0, len(names))
	for _, name := range names {
		keyboards = append(keyboards, InsertKeyboard(t, db, domain.Keyboard{Name: name}))
	}
	return keyboards
}

// InsertDetail stores a keyboard_details row and returns its ID.
func InsertDetail(t testing.TB, db *sql.DB, keyboardID int64, color string) int64 {
	t.Helper()
	return insert(t, db, "INSERT INTO keyboard_details (keyboard_id, color) VALUES (?, ?)", keyboardID, color)
}

// InsertComparison stores a comparison_table row and returns its ID.
func InsertComparison(t testing.TB, db *sql.DB, c domain.ComparisonEntry) int64 {
	t.Helper()
	return insert(t, db,
		`INSERT INTO comparison_table
			(keyboard_details_id, switch_type, layout, connectivity, keycap_material, price)
			VALUES (?, ?, ?, ?, ?, ?)`,
		c.KeyboardDetailsID, c.SwitchType, c.Layout, c.Connectivity, c.KeycapMaterial, c.Price,
	)
}

// Ptr returns a pointer to v, for optional fixture columns.
func Ptr[T any](v T) *T {
	return &v
}

func insert(t testing.TB, db *sql.DB, query string, args ...any) int64 {
	t.Helper()

	res, err := db.Exec(query, args...)
	require.NoError(t, err, fmt.Sprintf("fixture insert failed: %s", query))

	id, err := res.LastInsertId()
	require.NoError(t, err, "fixture insert returned no id")
	return id
}
