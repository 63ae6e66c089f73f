package missiontype

import (
	"context"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type MissionTypeServicer interface {
	ListMissionTypes(ctx context.Context, q params.List) ([]model.MissionType, uint64, error)
	GetMissionType(ctx context.Context, id int64) (*model.MissionType, error)
	CreateMissionType(ctx context.Context, missionType *model.NewMissionType) (int64, error)
	UpdateMissionType(ctx context.Context, id int64, update *model.UpdateMissionType) error
	DeleteMissionType(ctx context.Context, id int64) error
	AddSkill(ctx context.Context, id, skillID int64) error
	RemoveSkill(ctx context.Context, id, skillID int64) error
}

type Service struct {
	repo repository.MissionTypeRepository
}

func NewService(repo repository.MissionTypeRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMissionTypes(ctx context.Context, q params.List) ([]model.MissionType, uint64, error) {
	types, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mission types: %w", err)
	}
	return types, total, nil
}

func (s *Service) GetMissionType(ctx context.Context, id int64) (*model.MissionType, error) {
	missionType, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get mission type: %w", err)
	}
	return missionType, nil
}

func (s *Service) CreateMissionType(ctx context.Context, missionType *model.NewMissionType) (int64, error) {
	id, err := s.repo.Create(ctx, missionType)
	if err != nil {
		return 0, fmt.Errorf("failed to create mission type: %w", err)
	}
	return id, nil
}

func (s *Service) UpdateMissionType(ctx context.Context, id int64, update *model.UpdateMissionType) error {
	if err := s.repo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update mission type: %w", err)
	}
	return nil
}

func (s *Service) DeleteMissionType(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mission type: %w", err)
	}
	return nil
}

func (s *Service) AddSkill(ctx context.Context, id, skillID int64) error {
	if err := s.repo.AddSkill(ctx, id, skillID); err != nil {
		return fmt.Errorf("failed to associate skill: %w", err)
	}
	return nil
}

func (s *Service) RemoveSkill(ctx context.Context, id, skillID int64) error {
	if err := s.repo.RemoveSkill(ctx, id, skillID); err != nil {
		return fmt.Errorf("failed to dissociate skill: %w", err)
	}
	return nil
}
