package repository

import (
	"context"
	"database/sql"

	"wandshop-api/internal/model"
)

// Querier is satisfied by *sql.DB, *sql.Tx and *sql.Conn so ledger writes
// can join whatever transaction the caller holds.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InventoryRepository defines component ledger access.
type InventoryRepository interface {
	// GetQuantity returns the on-hand quantity, 0 when no entry exists.
	GetQuantity(ctx context.Context, kind model.ItemKind, materialID int64) (int, error)

	// AdjustStock applies delta in its own auto-committed statement.
	AdjustStock(ctx context.Context, kind model.ItemKind, materialID int64, delta int) error

	// List returns every ledger entry joined with its material name.
	List(ctx context.Context) ([]model.InventoryEntry, error)
}

// WandRepository defines wand catalog access.
type WandRepository interface {
	// Create inserts the wand and consumes one wood and one core unit atomically.
	Create(ctx context.Context, w *model.Wand) (int64, error)

	// Get returns nil when the wand does not exist.
	Get(ctx context.Context, id int64) (*model.Wand, error)

	GetDetails(ctx context.Context, id int64) (*model.WandDetails, error)
	List(ctx context.Context) ([]model.WandListing, error)

	// Search matches query as a substring of wood name, core material or status.
	Search(ctx context.Context, query string) ([]model.WandListing, error)

	Update(ctx context.Context, w *model.Wand) error
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository defines customer registry access.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) (int64, error)
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	FindByName(ctx context.Context, name string) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int64) error

	// CountByLicense returns how many customers hold license, excluding excludeID.
	CountByLicense(ctx context.Context, license string, excludeID int64) (int, error)
}

// DeliveryRepository defines delivery persistence.
type DeliveryRepository interface {
	// Record persists the header, items and ledger increments in one transaction.
	Record(ctx context.Context, d *model.Delivery) (int64, error)

	// Get returns nil when the delivery does not exist.
	Get(ctx context.Context, id int64) (*model.Delivery, error)

	// List returns all deliveries, newest first, with items attached.
	List(ctx context.Context) ([]model.Delivery, error)
}

// SalesRepository defines sales persistence and reporting.
type SalesRepository interface {
	Create(ctx context.Context, s *model.Sale) (int64, error)
	List(ctx context.Context) ([]model.SaleReport, error)
}

// ReferenceRepository reads wood and core reference data.
type ReferenceRepository interface {
	ListWoodTypes(ctx context.Context) ([]model.WoodType, error)
	ListCores(ctx context.Context) ([]model.Core, error)
	WoodIDByName(ctx context.Context, name string) (int64, error)
	CoreIDByMaterial(ctx context.Context, material string) (int64, error)
}

// StatsRepository reports table sizes for the admin dashboard.
type StatsRepository interface {
	GetStats(ctx context.Context) (map[string]interface{}, error)
}
