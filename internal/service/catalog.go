package service

import (
	"context"
	"strings"

	"wandshop-api/internal/model"
	"wandshop-api/internal/repository"
)

// CatalogService exposes wood and core reference data.
type CatalogService struct {
	repo repository.ReferenceRepository
}

func NewCatalogService(repo repository.ReferenceRepository) *CatalogService {
	if repo == nil {
		return nil
	}
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListWoodTypes(ctx context.Context) ([]model.WoodType, error) {
	return s.repo.ListWoodTypes(ctx)
}

func (s *CatalogService) ListCores(ctx context.Context) ([]model.Core, error) {
	return s.repo.ListCores(ctx)
}

// WoodIDByName returns ErrNotFound for an unknown wood.
func (s *CatalogService) WoodIDByName(ctx context.Context, name string) (int64, error) {
	return s.repo.WoodIDByName(ctx, strings.TrimSpace(name))
}

// CoreIDByMaterial returns ErrNotFound for an unknown core.
func (s *CatalogService) CoreIDByMaterial(ctx context.Context, material string) (int64, error) {
	return s.repo.CoreIDByMaterial(ctx, strings.TrimSpace(material))
}
