package skill

import (
	"context"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type SkillServicer interface {
	ListSkills(ctx context.Context, q params.List) ([]model.Skill, uint64, error)
	GetSkill(ctx context.Context, id int64) (*model.Skill, error)
	CreateSkill(ctx context.Context, skill *model.NewSkill) (int64, error)
	UpdateSkill(ctx context.Context, id int64, update *model.UpdateSkill) error
	DeleteSkill(ctx context.Context, id int64) error
}

type Service struct {
	repo repository.SkillRepository
}

func NewService(repo repository.SkillRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListSkills(ctx context.Context, q params.List) ([]model.Skill, uint64, error) {
	skills, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, total, nil
}

func (s *Service) GetSkill(ctx context.Context, id int64) (*model.Skill, error) {
	skill, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return skill, nil
}

func (s *Service) CreateSkill(ctx context.Context, skill *model.NewSkill) (int64, error) {
	id, err := s.repo.Create(ctx, skill)
	if err != nil {
		return 0, fmt.Errorf("failed to create skill: %w", err)
	}
	return id, nil
}

func (s *Service) UpdateSkill(ctx context.Context, id int64, update *model.UpdateSkill) error {
	if err := s.repo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	return nil
}

func (s *Service) DeleteSkill(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}
