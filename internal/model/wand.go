package model

import "github.com/shopspring/decimal"

// DateLayout is the storage and wire layout of calendar dates.
const DateLayout = "2006-01-02"

// Wand is a manufactured wand.
type Wand struct {
	ID              int64           `json:"id"`
	WoodID          int64           `json:"wood_id"`
	CoreID          int64           `json:"core_id"`
	Length          float64         `json:"length"`
	Flexibility     Flexibility     `json:"flexibility"`
	Condition       Condition       `json:"condition"`
	Price           decimal.Decimal `json:"price"`
	Status          WandStatus      `json:"status"`
	SpecialFeatures string          `json:"special_features,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	ProductionDate  string          `json:"production_date,omitempty"`
}

// WandDetails is a wand joined with its wood and core.
type WandDetails struct {
	Wand
	Wood WoodType `json:"wood"`
	Core Core     `json:"core"`
}

// WandListing is the row shape used by the catalog listing and search.
type WandListing struct {
	Wand
	WoodName     string `json:"wood_name"`
	CoreMaterial string `json:"core_material"`
}
