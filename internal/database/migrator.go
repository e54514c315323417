package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrResetNotConfirmed is returned when Reset is called without confirmation.
	ErrResetNotConfirmed = errors.New("reset operation not confirmed")

	// ErrStoreNotEmpty is returned when sample data would land on existing rows.
	ErrStoreNotEmpty = errors.New("store already holds data")
)

// seededTables are the tables the sample script writes to.
var seededTables = []string{"wood_types", "cores", "component_inventory", "customers", "wands", "sales"}

// ScriptError reports the statement that failed while running a script.
type ScriptError struct {
	Script    string
	Statement string
	Err       error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("error executing %s: %v", e.Script, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }

// Migrator runs the schema, sample data and reset scripts.
type Migrator struct {
	db      *sql.DB
	scripts *Scripts
}

// NewMigrator creates a Migrator bound to db.
func NewMigrator(db *sql.DB, scripts *Scripts) *Migrator {
	return &Migrator{db: db, scripts: scripts}
}

// InitSchema creates all tables that do not exist yet.
func (m *Migrator) InitSchema(ctx context.Context) error {
	return m.run(ctx, SchemaScript)
}

// SeedSampleData inserts the sample reference data and stock in one
// transaction. It refuses with ErrStoreNotEmpty when any seeded table
// already has rows.
func (m *Migrator) SeedSampleData(ctx context.Context) error {
	empty, err := m.IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return ErrStoreNotEmpty
	}

	stmts, err := m.scripts.Load(SampleScript)
	if err != nil {
		return err
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return &ScriptError{Script: SampleScript, Statement: stmt, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sample data: %w", err)
	}

	zap.L().Info("sql script executed",
		zap.String("script", SampleScript),
		zap.Int("statements", len(stmts)),
	)
	return nil
}

// IsEmpty reports whether every table the sample data touches has no rows.
func (m *Migrator) IsEmpty(ctx context.Context) (bool, error) {
	for _, table := range seededTables {
		var n int
		if err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return false, fmt.Errorf("failed to inspect %s: %w", table, err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// Reset drops all tables and recreates an empty schema. It refuses to run
// unless confirmed is true.
func (m *Migrator) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}

	zap.L().Warn("resetting database")
	if err := m.run(ctx, ResetScript); err != nil {
		return err
	}
	return m.run(ctx, SchemaScript)
}

// run executes every statement of a script on one dedicated connection so
// session settings made by the script apply to the statements after it.
func (m *Migrator) run(ctx context.Context, name string) error {
	stmts, err := m.scripts.Load(name)
	if err != nil {
		return err
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return &ScriptError{Script: name, Statement: stmt, Err: err}
		}
	}

	zap.L().Info("sql script executed",
		zap.String("script", name),
		zap.Int("statements", len(stmts)),
	)
	return nil
}
