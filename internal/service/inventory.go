package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"wandshop-api/internal/cache"
	"wandshop-api/internal/model"
	"wandshop-api/internal/repository"

	"go.uber.org/zap"
)

const (
	inventoryKeyPrefix = "inventory:"
	inventoryListKey   = inventoryKeyPrefix + "list"
)

// inventoryGeneration counts ledger changes made by this process. A listing
// read under an older generation is never left in the cache.
var inventoryGeneration atomic.Uint64

// InventoryService handles the component ledger.
type InventoryService struct {
	repo  repository.InventoryRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewInventoryService creates a new inventory service.
// Returns nil if repo is nil (required dependency). A nil cache disables caching.
func NewInventoryService(repo repository.InventoryRepository, c cache.Cache, ttl time.Duration) *InventoryService {
	if repo == nil {
		return nil
	}
	if c == nil {
		c = cache.NopCache{}
	}
	return &InventoryService{repo: repo, cache: c, ttl: ttl}
}

// GetQuantity returns the on-hand quantity, 0 when the material was never stocked.
func (s *InventoryService) GetQuantity(ctx context.Context, kind model.ItemKind, materialID int64) (int, error) {
	if !kind.Valid() {
		return 0, invalid("kind", "must be one of wood, core")
	}
	return s.repo.GetQuantity(ctx, kind, materialID)
}

// AdjustStock applies a manual correction outside any delivery or wand.
func (s *InventoryService) AdjustStock(ctx context.Context, kind model.ItemKind, materialID int64, delta int) error {
	if !kind.Valid() {
		return invalid("kind", "must be one of wood, core")
	}
	if materialID <= 0 {
		return invalid("material_id", "must be positive")
	}

	if err := s.repo.AdjustStock(ctx, kind, materialID, delta); err != nil {
		invalidateInventory(ctx, s.cache)
		return err
	}

	zap.L().Info("stock adjusted",
		zap.String("kind", string(kind)),
		zap.Int64("material_id", materialID),
		zap.Int("delta", delta),
	)
	invalidateInventory(ctx, s.cache)
	return nil
}

// ListInventory returns the joined ledger, served from cache when warm.
func (s *InventoryService) ListInventory(ctx context.Context) ([]model.InventoryEntry, error) {
	raw, err := s.cache.Get(ctx, inventoryListKey)
	if err == nil {
		return decodeInventory(raw)
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		zap.L().Warn("inventory cache read failed", zap.Error(err))
	}

	gen := inventoryGeneration.Load()
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(entries); err == nil && inventoryGeneration.Load() == gen {
		if err := s.cache.Set(ctx, inventoryListKey, raw, s.ttl); err != nil {
			zap.L().Warn("failed to cache inventory", zap.Error(err))
		}
		// A writer may have committed between the check and the Set.
		if inventoryGeneration.Load() != gen {
			_ = s.cache.Delete(ctx, inventoryListKey)
		}
	}
	return entries, nil
}

func decodeInventory(raw []byte) ([]model.InventoryEntry, error) {
	var entries []model.InventoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cached inventory: %w", err)
	}
	return entries, nil
}

// invalidateInventory drops cached ledger listings after a stock change.
// A failure only costs staleness until the TTL expires, so it is logged.
func invalidateInventory(ctx context.Context, c cache.Cache) {
	inventoryGeneration.Add(1)
	if err := c.DeletePrefix(ctx, inventoryKeyPrefix); err != nil {
		zap.L().Warn("failed to invalidate inventory cache", zap.Error(err))
	}
}
