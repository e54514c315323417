package repository

import (
	"context"
	"database/sql"
	"fmt"
)

var statTables = []string{
	"wood_types", "cores", "wands", "customers",
	"component_inventory", "inventory_deliveries", "delivery_items", "sales",
}

// SQLStatsRepository reports row counts and store size.
type SQLStatsRepository struct {
	db      *sql.DB
	dialect string
}

// NewSQLStatsRepository creates a stats repository. dialect is "sqlite" or "mysql".
func NewSQLStatsRepository(db *sql.DB, dialect string) *SQLStatsRepository {
	return &SQLStatsRepository{db: db, dialect: dialect}
}

// GetStats returns statistics about the shop database.
func (r *SQLStatsRepository) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})
	stats["driver"] = r.dialect

	counts := make(map[string]int64, len(statTables))
	for _, table := range statTables {
		var n int64
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	stats["rows"] = counts

	var units sql.NullInt64
	if err := r.db.QueryRowContext(ctx, "SELECT SUM(quantity) FROM component_inventory").Scan(&units); err == nil {
		stats["units_on_hand"] = units.Int64
	}

	// Database file size (approximate from page count)
	if r.dialect == "sqlite" {
		var pageCount, pageSize int64
		r.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount)
		r.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize)
		stats["db_size_bytes"] = pageCount * pageSize
	}

	ps := r.db.Stats()
	stats["open_connections"] = ps.OpenConnections
	stats["in_use"] = ps.InUse

	return stats, nil
}

// Ensure SQLStatsRepository implements StatsRepository
var _ StatsRepository = (*SQLStatsRepository)(nil)
