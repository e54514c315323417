package service

import (
	"context"
	"strings"

	"wandshop-api/internal/cache"
	"wandshop-api/internal/model"
	"wandshop-api/internal/repository"
)

// DeliveryService records component deliveries.
type DeliveryService struct {
	repo  repository.DeliveryRepository
	cache cache.Cache
}

// NewDeliveryService creates a new delivery service.
// Returns nil if repo is nil (required dependency).
func NewDeliveryService(repo repository.DeliveryRepository, c cache.Cache) *DeliveryService {
	if repo == nil {
		return nil
	}
	if c == nil {
		c = cache.NopCache{}
	}
	return &DeliveryService{repo: repo, cache: c}
}

// RecordDelivery stores the delivery and raises stock for every item, all
// or nothing. It returns the new delivery id.
func (s *DeliveryService) RecordDelivery(ctx context.Context, d *model.Delivery) (int64, error) {
	if err := validateDelivery(d); err != nil {
		return 0, err
	}

	id, err := s.repo.Record(ctx, d)
	if err != nil {
		invalidateInventory(ctx, s.cache)
		return 0, err
	}
	d.ID = id

	invalidateInventory(ctx, s.cache)
	return id, nil
}

// GetDelivery returns nil when the delivery does not exist.
func (s *DeliveryService) GetDelivery(ctx context.Context, id int64) (*model.Delivery, error) {
	return s.repo.Get(ctx, id)
}

// ListDeliveries returns the delivery history, newest first.
func (s *DeliveryService) ListDeliveries(ctx context.Context) ([]model.Delivery, error) {
	return s.repo.List(ctx)
}

func validateDelivery(d *model.Delivery) error {
	d.SupplierName = strings.TrimSpace(d.SupplierName)
	if d.SupplierName == "" {
		return invalid("supplier_name", "is required")
	}
	if len(d.Items) == 0 {
		return invalid("items", "at least one item is required")
	}
	for i, it := range d.Items {
		switch {
		case !it.Kind.Valid():
			return invalid("items", "item %d: unknown kind %q", i, it.Kind)
		case it.MaterialID <= 0:
			return invalid("items", "item %d: material_id must be positive", i)
		case it.Quantity <= 0:
			return invalid("items", "item %d: quantity must be positive", i)
		}
	}
	return nil
}
