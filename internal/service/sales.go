package service

import (
	"context"
	"time"

	"wandshop-api/internal/model"
	"wandshop-api/internal/repository"
)

// SalesService records purchases and builds the sales report.
type SalesService struct {
	repo repository.SalesRepository
	now  func() time.Time
}

// NewSalesService creates a new sales service.
// Returns nil if repo is nil (required dependency).
func NewSalesService(repo repository.SalesRepository) *SalesService {
	if repo == nil {
		return nil
	}
	return &SalesService{repo: repo, now: time.Now}
}

// CreatePurchase stamps the sale with today's date and a lower-cased
// payment method, then stores it. Stock and wand status are left alone.
func (s *SalesService) CreatePurchase(ctx context.Context, sale *model.Sale) (int64, error) {
	pm, err := model.ParsePaymentMethod(string(sale.PaymentMethod))
	if err != nil {
		return 0, invalid("payment_method", "unknown value %q", sale.PaymentMethod)
	}
	switch {
	case sale.WandID <= 0:
		return 0, invalid("wand_id", "must be positive")
	case sale.CustomerID <= 0:
		return 0, invalid("customer_id", "must be positive")
	case sale.SalePrice.IsNegative():
		return 0, invalid("sale_price", "must not be negative")
	}

	sale.PaymentMethod = pm
	sale.SaleDate = s.now().Format(model.DateLayout)

	id, err := s.repo.Create(ctx, sale)
	if err != nil {
		return 0, err
	}
	sale.ID = id
	return id, nil
}

// ListSales returns the denormalized sales report.
func (s *SalesService) ListSales(ctx context.Context) ([]model.SaleReport, error) {
	return s.repo.List(ctx)
}
