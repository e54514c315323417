package service

import (
	"context"

	"wandshop-api/internal/cache"
	"wandshop-api/internal/repository"

	"go.uber.org/zap"
)

// SchemaManager runs the destructive and seeding scripts.
type SchemaManager interface {
	Reset(ctx context.Context, confirmed bool) error
	SeedSampleData(ctx context.Context) error
}

// AdminService wraps maintenance operations.
type AdminService struct {
	schema SchemaManager
	stats  repository.StatsRepository
	cache  cache.Cache
}

// NewAdminService creates a new admin service.
func NewAdminService(schema SchemaManager, stats repository.StatsRepository, c cache.Cache) *AdminService {
	if schema == nil {
		return nil
	}
	if c == nil {
		c = cache.NopCache{}
	}
	return &AdminService{schema: schema, stats: stats, cache: c}
}

// ResetDatabase wipes every table. It fails unless confirmed is true.
func (s *AdminService) ResetDatabase(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}
	if err := s.schema.Reset(ctx, confirmed); err != nil {
		return err
	}
	s.clearCache(ctx)
	return nil
}

// SeedSampleData loads the sample reference data and stock.
func (s *AdminService) SeedSampleData(ctx context.Context) error {
	if err := s.schema.SeedSampleData(ctx); err != nil {
		return err
	}
	s.clearCache(ctx)
	return nil
}

// Stats returns store statistics; nil when no stats repository is wired.
func (s *AdminService) Stats(ctx context.Context) (map[string]interface{}, error) {
	if s.stats == nil {
		return nil, nil
	}
	return s.stats.GetStats(ctx)
}

func (s *AdminService) clearCache(ctx context.Context) {
	inventoryGeneration.Add(1)
	if err := s.cache.Clear(ctx); err != nil {
		zap.L().Warn("failed to clear cache", zap.Error(err))
	}
}
