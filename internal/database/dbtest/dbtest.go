// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"wandshop-api/internal/database"
)

// MemoryDSN is a private in-memory database. It lives as long as the
// handle's single connection.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// NewSQLite returns a fresh in-memory database with the schema applied.
// When seed is true the sample data script is loaded as well.
func NewSQLite(t testing.TB, seed bool) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLiteDSN(ctx, MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := database.NewMigrator(db, database.NewScripts(database.SQLite, ""))
	require.NoError(t, m.InitSchema(ctx))
	if seed {
		require.NoError(t, m.SeedSampleData(ctx))
	}
	return db
}
