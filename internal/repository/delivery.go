package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wandshop-api/internal/model"

	"go.uber.org/zap"
)

// SQLDeliveryRepository implements DeliveryRepository on database/sql.
type SQLDeliveryRepository struct {
	db *sql.DB
}

// NewSQLDeliveryRepository creates a new delivery repository.
func NewSQLDeliveryRepository(db *sql.DB) *SQLDeliveryRepository {
	return &SQLDeliveryRepository{db: db}
}

// Record persists the delivery header, every item and the matching ledger
// increments in one transaction. Any failure rolls all of it back.
func (r *SQLDeliveryRepository) Record(ctx context.Context, d *model.Delivery) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO inventory_deliveries (delivery_date, supplier_name, received_by, notes)
		VALUES (CURRENT_TIMESTAMP, ?, ?, ?)`,
		d.SupplierName, d.ReceivedBy, d.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert delivery: %w", err)
	}

	id, err := insertedID(res)
	if err != nil {
		return 0, fmt.Errorf("failed to insert delivery: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO delivery_items (delivery_id, item_type, material_id, quantity)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, item := range d.Items {
		if _, err := stmt.ExecContext(ctx, id, string(item.Kind), item.MaterialID, item.Quantity); err != nil {
			return 0, fmt.Errorf("failed to insert delivery item %d: %w", i, err)
		}
		if err := AdjustStock(ctx, tx, item.Kind, item.MaterialID, item.Quantity); err != nil {
			return 0, fmt.Errorf("delivery item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Info("delivery recorded",
		zap.Int64("delivery_id", id),
		zap.String("supplier", d.SupplierName),
		zap.Int("items", len(d.Items)),
	)
	return id, nil
}

// Get returns the delivery with its items in insertion order, nil when absent.
func (r *SQLDeliveryRepository) Get(ctx context.Context, id int64) (*model.Delivery, error) {
	query := `
		SELECT delivery_id, delivery_date, supplier_name, received_by, notes
		FROM inventory_deliveries WHERE delivery_id = ?`

	d, err := scanDelivery(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	items, err := r.items(ctx, `WHERE delivery_id = ?`, id)
	if err != nil {
		return nil, err
	}
	d.Items = items[id]
	if d.Items == nil {
		d.Items = []model.DeliveryItem{}
	}
	return d, nil
}

// List returns all deliveries, newest first, with items attached.
func (r *SQLDeliveryRepository) List(ctx context.Context) ([]model.Delivery, error) {
	query := `
		SELECT delivery_id, delivery_date, supplier_name, received_by, notes
		FROM inventory_deliveries
		ORDER BY delivery_date DESC, delivery_id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	var deliveries []model.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		deliveries = append(deliveries, *d)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	// Rows are closed before the second query; the sqlite handle has one connection.
	items, err := r.items(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range deliveries {
		deliveries[i].Items = items[deliveries[i].ID]
		if deliveries[i].Items == nil {
			deliveries[i].Items = []model.DeliveryItem{}
		}
	}
	return deliveries, nil
}

// items loads delivery items grouped by delivery id, in insertion order.
func (r *SQLDeliveryRepository) items(ctx context.Context, where string, args ...any) (map[int64][]model.DeliveryItem, error) {
	query := `
		SELECT delivery_id, item_type, material_id, quantity
		FROM delivery_items ` + where + `
		ORDER BY delivery_id, item_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery items: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]model.DeliveryItem)
	for rows.Next() {
		var (
			deliveryID int64
			kind       string
			item       model.DeliveryItem
		)
		if err := rows.Scan(&deliveryID, &kind, &item.MaterialID, &item.Quantity); err != nil {
			return nil, &DecodeError{Entity: "delivery_item", Column: "*", Err: err}
		}
		if item.Kind, err = decodeEnum("delivery_item", "item_type", kind, false, model.ParseItemKind); err != nil {
			return nil, err
		}
		out[deliveryID] = append(out[deliveryID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery items: %w", err)
	}
	return out, nil
}

func scanDelivery(s scanner) (*model.Delivery, error) {
	var (
		d    model.Delivery
		date any
	)
	if err := s.Scan(&d.ID, &date, &d.SupplierName, &d.ReceivedBy, &d.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &DecodeError{Entity: "delivery", Column: "*", Err: err}
	}

	var err error
	if d.DeliveryDate, err = decodeTime("delivery", "delivery_date", date); err != nil {
		return nil, err
	}
	return &d, nil
}

// Ensure SQLDeliveryRepository implements DeliveryRepository
var _ DeliveryRepository = (*SQLDeliveryRepository)(nil)
