package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wandshop-api/internal/model"
)

// SQLReferenceRepository reads wood and core reference data.
type SQLReferenceRepository struct {
	db *sql.DB
}

// NewSQLReferenceRepository creates a new reference data repository.
func NewSQLReferenceRepository(db *sql.DB) *SQLReferenceRepository {
	return &SQLReferenceRepository{db: db}
}

// ListWoodTypes returns all woods ordered by name.
func (r *SQLReferenceRepository) ListWoodTypes(ctx context.Context) ([]model.WoodType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT wood_id, name, rarity, description FROM wood_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list wood types: %w", err)
	}
	defer rows.Close()

	var woods []model.WoodType
	for rows.Next() {
		var w model.WoodType
		if err := rows.Scan(&w.ID, &w.Name, &w.Rarity, &w.Description); err != nil {
			return nil, &DecodeError{Entity: "wood_type", Column: "*", Err: err}
		}
		woods = append(woods, w)
	}
	return woods, rows.Err()
}

// ListCores returns all cores ordered by material.
func (r *SQLReferenceRepository) ListCores(ctx context.Context) ([]model.Core, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT core_id, material, description, danger_level FROM cores ORDER BY material`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cores: %w", err)
	}
	defer rows.Close()

	var cores []model.Core
	for rows.Next() {
		var c model.Core
		if err := rows.Scan(&c.ID, &c.Material, &c.Description, &c.DangerLevel); err != nil {
			return nil, &DecodeError{Entity: "core", Column: "*", Err: err}
		}
		cores = append(cores, c)
	}
	return cores, rows.Err()
}

// WoodIDByName returns ErrNotFound for an unknown wood.
func (r *SQLReferenceRepository) WoodIDByName(ctx context.Context, name string) (int64, error) {
	return r.lookupID(ctx, `SELECT wood_id FROM wood_types WHERE name = ?`, "wood type", name)
}

// CoreIDByMaterial returns ErrNotFound for an unknown core.
func (r *SQLReferenceRepository) CoreIDByMaterial(ctx context.Context, material string) (int64, error) {
	return r.lookupID(ctx, `SELECT core_id FROM cores WHERE material = ?`, "core", material)
}

func (r *SQLReferenceRepository) lookupID(ctx context.Context, query, entity, key string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, query, key).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s %q: %w", entity, key, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to look up %s: %w", entity, err)
	}
	return id, nil
}

// Ensure SQLReferenceRepository implements ReferenceRepository
var _ ReferenceRepository = (*SQLReferenceRepository)(nil)
