package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"wandshop-api/internal/database/dbtest"
	"wandshop-api/internal/model"
)

// Sample data ids, see scripts/sqlite/sample_data.sql.
const (
	woodHolly   int64 = 1
	woodElder   int64 = 2
	woodVine    int64 = 5
	corePhoenix int64 = 1
	coreDragon  int64 = 2
	coreVeela   int64 = 4
)

func seededDB(t *testing.T) *sql.DB {
	return dbtest.NewSQLite(t, true)
}

func quantity(t *testing.T, db *sql.DB, kind model.ItemKind, id int64) int {
	t.Helper()
	q, err := NewSQLInventoryRepository(db).GetQuantity(context.Background(), kind, id)
	require.NoError(t, err)
	return q
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func newWand(woodID, coreID int64) *model.Wand {
	return &model.Wand{
		WoodID:         woodID,
		CoreID:         coreID,
		Length:         11,
		Flexibility:    model.FlexSupple,
		Condition:      model.ConditionNew,
		Price:          decimal.RequireFromString("7.50"),
		Status:         model.StatusInStock,
		ProductionDate: "2024-05-01",
	}
}
