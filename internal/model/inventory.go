package model

import "time"

// InventoryEntry is one ledger row joined with its material name.
type InventoryEntry struct {
	Kind         ItemKind  `json:"kind"`
	MaterialID   int64     `json:"material_id"`
	MaterialName string    `json:"material_name"`
	Quantity     int       `json:"quantity"`
	LastUpdated  time.Time `json:"last_updated"`
}

// Delivery is a single intake of components from a supplier.
type Delivery struct {
	ID           int64          `json:"id"`
	DeliveryDate time.Time      `json:"delivery_date"`
	SupplierName string         `json:"supplier_name"`
	ReceivedBy   string         `json:"received_by,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	Items        []DeliveryItem `json:"items"`
}

// DeliveryItem is owned by its Delivery.
type DeliveryItem struct {
	Kind       ItemKind `json:"kind"`
	MaterialID int64    `json:"material_id"`
	Quantity   int      `json:"quantity"`
}

// TotalUnits sums item quantities.
func (d *Delivery) TotalUnits() int {
	n := 0
	for _, it := range d.Items {
		n += it.Quantity
	}
	return n
}
