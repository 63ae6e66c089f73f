package mission

import (
	"context"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type MissionServicer interface {
	ListMissions(ctx context.Context, q params.List) ([]model.Mission, uint64, error)
	GetMission(ctx context.Context, id int64) (*model.Mission, error)
	CreateMission(ctx context.Context, mission *model.NewMission) (int64, error)
	UpdateMission(ctx context.Context, id int64, update *model.UpdateMission) error
	DeleteMission(ctx context.Context, id int64) error
}

type Service struct {
	repo repository.MissionRepository
}

func NewService(repo repository.MissionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMissions(ctx context.Context, q params.List) ([]model.Mission, uint64, error) {
	missions, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, total, nil
}

func (s *Service) GetMission(ctx context.Context, id int64) (*model.Mission, error) {
	mission, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return mission, nil
}

func (s *Service) CreateMission(ctx context.Context, mission *model.NewMission) (int64, error) {
	id, err := s.repo.Create(ctx, mission)
	if err != nil {
		return 0, fmt.Errorf("failed to create mission: %w", err)
	}
	return id, nil
}

func (s *Service) UpdateMission(ctx context.Context, id int64, update *model.UpdateMission) error {
	if err := s.repo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	return nil
}

func (s *Service) DeleteMission(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	return nil
}
