package zone

import (
	"context"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
)

type ZoneServicer interface {
	GetZone(ctx context.Context, claims *auth.Claims, id int64) (*model.Zone, error)
	CreateZone(ctx context.Context, claims *auth.Claims, zone *model.NewZone) (int64, error)
	UpdateZone(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateZone) error
	DeleteZone(ctx context.Context, claims *auth.Claims, id int64) error
}

// Service scopes every zone to the caller's center.
type Service struct {
	repo repository.ZoneRepository
}

func NewService(repo repository.ZoneRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetZone(ctx context.Context, claims *auth.Claims, id int64) (*model.Zone, error) {
	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}
	if err := auth.CheckTenant(claims, zone.IDCenter); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *Service) CreateZone(ctx context.Context, claims *auth.Claims, zone *model.NewZone) (int64, error) {
	id, err := s.repo.Create(ctx, claims.CenterID, zone)
	if err != nil {
		return 0, fmt.Errorf("failed to create zone: %w", err)
	}
	return id, nil
}

func (s *Service) UpdateZone(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateZone) error {
	if _, err := s.GetZone(ctx, claims, id); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update zone: %w", err)
	}
	return nil
}

func (s *Service) DeleteZone(ctx context.Context, claims *auth.Claims, id int64) error {
	if _, err := s.GetZone(ctx, claims, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}
	return nil
}
