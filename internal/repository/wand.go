package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wandshop-api/internal/model"

	"go.uber.org/zap"
)

const wandColumns = `w.wand_id, w.wood_id, w.core_id, w.length, w.flexibility, w.wand_condition,
	w.price, w.status, w.special_features, w.notes, w.production_date`

// SQLWandRepository implements WandRepository on database/sql.
type SQLWandRepository struct {
	db *sql.DB
}

// NewSQLWandRepository creates a new wand repository.
func NewSQLWandRepository(db *sql.DB) *SQLWandRepository {
	return &SQLWandRepository{db: db}
}

// Create inserts the wand and takes one unit of its wood and core out of
// stock in the same transaction. Nothing persists unless all three writes do.
func (r *SQLWandRepository) Create(ctx context.Context, w *model.Wand) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO wands (wood_id, core_id, length, flexibility, wand_condition, price,
			status, special_features, notes, production_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := tx.ExecContext(ctx, query,
		w.WoodID, w.CoreID, w.Length, string(w.Flexibility), string(w.Condition), w.Price,
		string(w.Status), w.SpecialFeatures, w.Notes, w.ProductionDate)
	if err != nil {
		return 0, fmt.Errorf("failed to insert wand: %w", err)
	}

	id, err := insertedID(res)
	if err != nil {
		return 0, fmt.Errorf("failed to insert wand: %w", err)
	}

	if err := consumeOne(ctx, tx, model.ItemKindWood, w.WoodID); err != nil {
		return 0, err
	}
	if err := consumeOne(ctx, tx, model.ItemKindCore, w.CoreID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	zap.L().Debug("wand created",
		zap.Int64("wand_id", id),
		zap.Int64("wood_id", w.WoodID),
		zap.Int64("core_id", w.CoreID),
	)
	return id, nil
}

// Get returns nil when the wand does not exist.
func (r *SQLWandRepository) Get(ctx context.Context, id int64) (*model.Wand, error) {
	query := `SELECT ` + wandColumns + ` FROM wands w WHERE w.wand_id = ?`

	w, err := scanWand(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wand: %w", err)
	}
	return w, nil
}

// GetDetails returns the wand joined with its wood and core, nil when absent.
func (r *SQLWandRepository) GetDetails(ctx context.Context, id int64) (*model.WandDetails, error) {
	query := `
		SELECT ` + wandColumns + `,
			wt.wood_id, wt.name, wt.rarity, wt.description,
			c.core_id, c.material, c.description, c.danger_level
		FROM wands w
		JOIN wood_types wt ON w.wood_id = wt.wood_id
		JOIN cores c ON w.core_id = c.core_id
		WHERE w.wand_id = ?`

	var d model.WandDetails
	w, err := scanWand(r.db.QueryRowContext(ctx, query, id),
		&d.Wood.ID, &d.Wood.Name, &d.Wood.Rarity, &d.Wood.Description,
		&d.Core.ID, &d.Core.Material, &d.Core.Description, &d.Core.DangerLevel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wand details: %w", err)
	}
	d.Wand = *w
	return &d, nil
}

// List returns every wand with its wood name and core material.
func (r *SQLWandRepository) List(ctx context.Context) ([]model.WandListing, error) {
	return r.list(ctx, "", nil)
}

// Search matches query as a substring of wood name, core material or status.
func (r *SQLWandRepository) Search(ctx context.Context, query string) ([]model.WandListing, error) {
	p := likePattern(query)
	return r.list(ctx, `WHERE wt.name LIKE ? OR c.material LIKE ? OR w.status LIKE ?`, []any{p, p, p})
}

func (r *SQLWandRepository) list(ctx context.Context, where string, args []any) ([]model.WandListing, error) {
	query := `
		SELECT ` + wandColumns + `, wt.name, c.material
		FROM wands w
		JOIN wood_types wt ON w.wood_id = wt.wood_id
		JOIN cores c ON w.core_id = c.core_id
		` + where + `
		ORDER BY w.wand_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list wands: %w", err)
	}
	defer rows.Close()

	var wands []model.WandListing
	for rows.Next() {
		var l model.WandListing
		w, err := scanWand(rows, &l.WoodName, &l.CoreMaterial)
		if err != nil {
			return nil, err
		}
		l.Wand = *w
		wands = append(wands, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wands: %w", err)
	}
	return wands, nil
}

// Update overwrites every mutable column. Stock is not touched.
func (r *SQLWandRepository) Update(ctx context.Context, w *model.Wand) error {
	query := `
		UPDATE wands SET wood_id = ?, core_id = ?, length = ?, flexibility = ?, wand_condition = ?,
			price = ?, status = ?, special_features = ?, notes = ?, production_date = ?
		WHERE wand_id = ?`

	res, err := r.db.ExecContext(ctx, query,
		w.WoodID, w.CoreID, w.Length, string(w.Flexibility), string(w.Condition), w.Price,
		string(w.Status), w.SpecialFeatures, w.Notes, w.ProductionDate, w.ID)
	if err != nil {
		return fmt.Errorf("failed to update wand: %w", err)
	}
	return expectRow(res, "wand", w.ID)
}

// Delete removes the wand. Its materials are not restocked.
func (r *SQLWandRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wands WHERE wand_id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("wand %d has sales: %w", id, ErrInUse)
		}
		return fmt.Errorf("failed to delete wand: %w", err)
	}
	return expectRow(res, "wand", id)
}

// scanWand reads wandColumns followed by any extra destinations.
func scanWand(s scanner, extra ...any) (*model.Wand, error) {
	var (
		w                         model.Wand
		flex, cond, status        string
		features, notes, produced sql.NullString
	)
	dest := append([]any{
		&w.ID, &w.WoodID, &w.CoreID, &w.Length, &flex, &cond,
		&w.Price, &status, &features, &notes, &produced,
	}, extra...)
	if err := s.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &DecodeError{Entity: "wand", Column: "*", Err: err}
	}

	var err error
	if w.Flexibility, err = decodeEnum("wand", "flexibility", flex, false, model.ParseFlexibility); err != nil {
		return nil, err
	}
	if w.Condition, err = decodeEnum("wand", "wand_condition", cond, false, model.ParseCondition); err != nil {
		return nil, err
	}
	if w.Status, err = decodeEnum("wand", "status", status, false, model.ParseWandStatus); err != nil {
		return nil, err
	}
	w.SpecialFeatures = features.String
	w.Notes = notes.String
	w.ProductionDate = produced.String
	return &w, nil
}

// insertedID returns the generated key of a single-row insert.
func insertedID(res sql.Result) (int64, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, fmt.Errorf("no rows inserted: %w", ErrPersistence)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("no generated key: %v: %w", err, ErrPersistence)
	}
	if id <= 0 {
		return 0, fmt.Errorf("no generated key: %w", ErrPersistence)
	}
	return id, nil
}

// expectRow maps a zero-row update or delete to ErrNotFound.
func expectRow(res sql.Result, entity string, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return nil
}

// Ensure SQLWandRepository implements WandRepository
var _ WandRepository = (*SQLWandRepository)(nil)
