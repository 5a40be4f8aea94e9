package testdb

import (
	"context"
	"testing"

	"github.com/phrazzld/keysfinder-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAppliesSchema(t *testing.T) {
	db := Open(t)

	for _, table := range []string{"keyboard", "keyboard_details", "comparison_table"} {
		var n int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
		require.NoError(t, err, "table %s should exist", table)
		assert.Zero(t, n)
	}
}

func TestOpenIsolatesDatabases(t *testing.T) {
	first := Open(t)
	second := Open(t)

	InsertKeyboard(t, first, domain.Keyboard{Name: "Only In First"})

	var n int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM keyboard").Scan(&n))
	assert.Zero(t, n)
}

func TestFixtures(t *testing.T) {
	db := Open(t)

	kb := InsertKeyboard(t, db, domain.Keyboard{ID: 42, Name: "Fixed Id"})
	assert.Equal(t, int64(42), kb.ID)
	assert.Equal(t, "Generic", kb.Brand)

	detailID := InsertDetail(t, db, kb.ID, "white")
	assert.NotZero(t, detailID)

	compID := InsertComparison(t, db, domain.ComparisonEntry{
		KeyboardDetailsID: detailID,
		SwitchType:        Ptr("linear"),
	})
	assert.NotZero(t, compID)

	var layout *string
	require.NoError(t, db.QueryRow("SELECT layout FROM comparison_table WHERE id = ?", compID).Scan(&layout))
	assert.Nil(t, layout)
}
