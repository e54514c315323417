package service

import (
	"context"
	"math"
	"strings"
	"time"

	"wandshop-api/internal/cache"
	"wandshop-api/internal/model"
	"wandshop-api/internal/repository"

	"go.uber.org/zap"
)

// WandService manages the wand catalog.
type WandService struct {
	wands     repository.WandRepository
	inventory repository.InventoryRepository
	cache     cache.Cache
	now       func() time.Time
}

// NewWandService creates a new wand service.
// Returns nil if either repository is missing.
func NewWandService(wands repository.WandRepository, inventory repository.InventoryRepository, c cache.Cache) *WandService {
	if wands == nil || inventory == nil {
		return nil
	}
	if c == nil {
		c = cache.NopCache{}
	}
	return &WandService{wands: wands, inventory: inventory, cache: c, now: time.Now}
}

// CreateWand manufactures a wand, consuming one unit of its wood and core.
// It fails with ErrInsufficientInventory, writing nothing, when either is
// out of stock.
func (s *WandService) CreateWand(ctx context.Context, w *model.Wand) (int64, error) {
	s.applyDefaults(w)
	if err := validateWand(w); err != nil {
		return 0, err
	}

	woodQty, err := s.inventory.GetQuantity(ctx, model.ItemKindWood, w.WoodID)
	if err != nil {
		return 0, err
	}
	coreQty, err := s.inventory.GetQuantity(ctx, model.ItemKindCore, w.CoreID)
	if err != nil {
		return 0, err
	}
	if woodQty <= 0 || coreQty <= 0 {
		zap.L().Info("wand creation refused",
			zap.Int64("wood_id", w.WoodID), zap.Int("wood_qty", woodQty),
			zap.Int64("core_id", w.CoreID), zap.Int("core_qty", coreQty),
		)
		return 0, ErrInsufficientInventory
	}

	id, err := s.wands.Create(ctx, w)
	if err != nil {
		invalidateInventory(ctx, s.cache)
		return 0, err
	}
	w.ID = id

	invalidateInventory(ctx, s.cache)
	return id, nil
}

// GetWand returns nil when the wand does not exist.
func (s *WandService) GetWand(ctx context.Context, id int64) (*model.Wand, error) {
	return s.wands.Get(ctx, id)
}

// GetWandDetails returns nil when the wand does not exist.
func (s *WandService) GetWandDetails(ctx context.Context, id int64) (*model.WandDetails, error) {
	return s.wands.GetDetails(ctx, id)
}

func (s *WandService) ListWands(ctx context.Context) ([]model.WandListing, error) {
	return s.wands.List(ctx)
}

// SearchWands matches wood name, core material or status. A blank query lists everything.
func (s *WandService) SearchWands(ctx context.Context, query string) ([]model.WandListing, error) {
	if strings.TrimSpace(query) == "" {
		return s.wands.List(ctx)
	}
	return s.wands.Search(ctx, query)
}

// UpdateWand overwrites the wand. Blank condition, status or production
// date keep their stored values. Stock is not returned or consumed.
func (s *WandService) UpdateWand(ctx context.Context, w *model.Wand) error {
	if w.ID <= 0 {
		return invalid("id", "must be positive")
	}
	if w.Condition == "" || w.Status == "" || w.ProductionDate == "" {
		current, err := s.wands.Get(ctx, w.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrNotFound
		}
		if w.Condition == "" {
			w.Condition = current.Condition
		}
		if w.Status == "" {
			w.Status = current.Status
		}
		if w.ProductionDate == "" {
			w.ProductionDate = current.ProductionDate
		}
	}
	if err := validateWand(w); err != nil {
		return err
	}
	return s.wands.Update(ctx, w)
}

// DeleteWand removes the wand. Its materials stay consumed.
func (s *WandService) DeleteWand(ctx context.Context, id int64) error {
	return s.wands.Delete(ctx, id)
}

func (s *WandService) applyDefaults(w *model.Wand) {
	if w.Status == "" {
		w.Status = model.StatusInStock
	}
	if w.Condition == "" {
		w.Condition = model.ConditionNew
	}
	if w.ProductionDate == "" {
		w.ProductionDate = s.now().Format(model.DateLayout)
	}
}

func validateWand(w *model.Wand) error {
	switch {
	case w.WoodID <= 0:
		return invalid("wood_id", "must be positive")
	case w.CoreID <= 0:
		return invalid("core_id", "must be positive")
	case math.IsNaN(w.Length) || math.IsInf(w.Length, 0) || w.Length <= 0:
		return invalid("length", "must be a positive number")
	case w.Price.IsNegative():
		return invalid("price", "must not be negative")
	case !w.Flexibility.Valid():
		return invalid("flexibility", "unknown value %q", w.Flexibility)
	case !w.Condition.Valid():
		return invalid("condition", "unknown value %q", w.Condition)
	case !w.Status.Valid():
		return invalid("status", "unknown value %q", w.Status)
	}
	if w.ProductionDate != "" {
		if _, err := time.Parse(model.DateLayout, w.ProductionDate); err != nil {
			return invalid("production_date", "must be formatted as YYYY-MM-DD")
		}
	}
	return nil
}
