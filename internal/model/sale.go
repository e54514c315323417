package model

import "github.com/shopspring/decimal"

// Sale is the transfer of a wand to a customer.
type Sale struct {
	ID            int64           `json:"id"`
	WandID        int64           `json:"wand_id"`
	CustomerID    int64           `json:"customer_id"`
	SaleDate      string          `json:"sale_date"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// SaleReport is a denormalized sales listing row.
type SaleReport struct {
	SaleID        int64           `json:"sale_id"`
	SaleDate      string          `json:"sale_date"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CustomerName  string          `json:"customer_name"`
	WoodType      string          `json:"wood_type"`
	CoreMaterial  string          `json:"core_material"`
	Length        float64         `json:"length"`
	Flexibility   Flexibility     `json:"flexibility"`
}
