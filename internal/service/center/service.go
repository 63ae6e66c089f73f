package center

import (
	"context"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type CenterServicer interface {
	ListCenters(ctx context.Context, q params.List) ([]model.Center, uint64, error)
	GetCenter(ctx context.Context, id int64) (*model.Center, error)
	ListZones(ctx context.Context, id int64, p params.Pagination) ([]model.Zone, uint64, error)
}

type Service struct {
	repo repository.CenterRepository
}

func NewService(repo repository.CenterRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCenters(ctx context.Context, q params.List) ([]model.Center, uint64, error) {
	centers, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list centers: %w", err)
	}
	return centers, total, nil
}

func (s *Service) GetCenter(ctx context.Context, id int64) (*model.Center, error) {
	center, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get center: %w", err)
	}
	return center, nil
}

func (s *Service) ListZones(ctx context.Context, id int64, p params.Pagination) ([]model.Zone, uint64, error) {
	zones, total, err := s.repo.ListZones(ctx, id, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, total, nil
}
