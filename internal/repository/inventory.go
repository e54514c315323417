package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wandshop-api/internal/model"
)

const (
	adjustStockQuery = `
		UPDATE component_inventory
		SET quantity = quantity + ?, last_updated = CURRENT_TIMESTAMP
		WHERE item_type = ? AND material_id = ?`

	insertStockQuery = `
		INSERT INTO component_inventory (item_type, material_id, quantity, last_updated)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)`

	consumeStockQuery = `
		UPDATE component_inventory
		SET quantity = quantity - 1, last_updated = CURRENT_TIMESTAMP
		WHERE item_type = ? AND material_id = ? AND quantity >= 1`
)

// AdjustStock adds delta to the ledger entry for (kind, materialID) using q,
// so it composes with the caller's transaction. An absent entry is created
// when delta is positive; an absent entry with delta <= 0 is left absent.
func AdjustStock(ctx context.Context, q Querier, kind model.ItemKind, materialID int64, delta int) error {
	res, err := q.ExecContext(ctx, adjustStockQuery, delta, string(kind), materialID)
	if err != nil {
		return fmt.Errorf("failed to update stock for %s %d: %w", kind, materialID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected > 0 || delta <= 0 {
		return nil
	}

	if _, err := q.ExecContext(ctx, insertStockQuery, string(kind), materialID, delta); err != nil {
		return fmt.Errorf("failed to insert stock for %s %d: %w", kind, materialID, err)
	}
	return nil
}

// consumeOne takes a single unit out of stock. The row is only touched when
// at least one unit is on hand, so two writers racing for the last unit
// cannot both succeed.
func consumeOne(ctx context.Context, q Querier, kind model.ItemKind, materialID int64) error {
	res, err := q.ExecContext(ctx, consumeStockQuery, string(kind), materialID)
	if err != nil {
		return fmt.Errorf("failed to consume %s %d: %w", kind, materialID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %d: %w", kind, materialID, ErrInsufficientInventory)
	}
	return nil
}

// SQLInventoryRepository implements InventoryRepository on database/sql.
type SQLInventoryRepository struct {
	db *sql.DB
}

// NewSQLInventoryRepository creates a new inventory repository.
func NewSQLInventoryRepository(db *sql.DB) *SQLInventoryRepository {
	return &SQLInventoryRepository{db: db}
}

// GetQuantity returns the on-hand quantity, 0 when no entry exists.
func (r *SQLInventoryRepository) GetQuantity(ctx context.Context, kind model.ItemKind, materialID int64) (int, error) {
	query := `SELECT quantity FROM component_inventory WHERE item_type = ? AND material_id = ?`

	var qty int
	err := r.db.QueryRowContext(ctx, query, string(kind), materialID).Scan(&qty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get quantity: %w", err)
	}
	return qty, nil
}

// AdjustStock applies delta as a single auto-committed statement pair.
func (r *SQLInventoryRepository) AdjustStock(ctx context.Context, kind model.ItemKind, materialID int64, delta int) error {
	return AdjustStock(ctx, r.db, kind, materialID, delta)
}

// List returns every ledger entry ordered by kind then material name.
func (r *SQLInventoryRepository) List(ctx context.Context) ([]model.InventoryEntry, error) {
	query := `
		SELECT i.item_type, i.material_id,
			CASE WHEN i.item_type = 'wood' THEN w.name ELSE c.material END AS material_name,
			i.quantity, i.last_updated
		FROM component_inventory i
		LEFT JOIN wood_types w ON i.item_type = 'wood' AND w.wood_id = i.material_id
		LEFT JOIN cores c ON i.item_type = 'core' AND c.core_id = i.material_id
		ORDER BY i.item_type, material_name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var entries []model.InventoryEntry
	for rows.Next() {
		e, err := scanInventoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory: %w", err)
	}
	return entries, nil
}

func scanInventoryEntry(s scanner) (*model.InventoryEntry, error) {
	var (
		e       model.InventoryEntry
		kind    string
		name    sql.NullString
		updated any
	)
	if err := s.Scan(&kind, &e.MaterialID, &name, &e.Quantity, &updated); err != nil {
		return nil, &DecodeError{Entity: "inventory", Column: "*", Err: err}
	}

	var err error
	if e.Kind, err = decodeEnum("inventory", "item_type", kind, false, model.ParseItemKind); err != nil {
		return nil, err
	}
	if e.LastUpdated, err = decodeTime("inventory", "last_updated", updated); err != nil {
		return nil, err
	}
	e.MaterialName = name.String
	return &e, nil
}

// Ensure SQLInventoryRepository implements InventoryRepository
var _ InventoryRepository = (*SQLInventoryRepository)(nil)
