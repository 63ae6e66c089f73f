package visit

import (
	"context"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type VisitServicer interface {
	ListVisits(ctx context.Context, q params.List) ([]model.Visit, uint64, error)
	GetVisit(ctx context.Context, id int64) (*model.Visit, error)
	CreateVisit(ctx context.Context, visit *model.NewVisit) (int64, error)
	UpdateVisit(ctx context.Context, id int64, update *model.UpdateVisit) error
	DeleteVisit(ctx context.Context, id int64) error
	ListNurses(ctx context.Context, id int64, p params.Pagination) ([]model.Nurse, uint64, error)
	ListReports(ctx context.Context, id int64, p params.Pagination) ([]model.Report, uint64, error)
	AddNurse(ctx context.Context, id, nurseID int64) error
	RemoveNurse(ctx context.Context, id, nurseID int64) error
	UpdateReport(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateReport) error
}

type Service struct {
	repo repository.VisitRepository
}

func NewService(repo repository.VisitRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListVisits(ctx context.Context, q params.List) ([]model.Visit, uint64, error) {
	visits, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, total, nil
}

func (s *Service) GetVisit(ctx context.Context, id int64) (*model.Visit, error) {
	visit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get visit: %w", err)
	}
	return visit, nil
}

func (s *Service) CreateVisit(ctx context.Context, visit *model.NewVisit) (int64, error) {
	id, err := s.repo.Create(ctx, visit)
	if err != nil {
		return 0, fmt.Errorf("failed to create visit: %w", err)
	}
	return id, nil
}

func (s *Service) UpdateVisit(ctx context.Context, id int64, update *model.UpdateVisit) error {
	if err := s.repo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update visit: %w", err)
	}
	return nil
}

func (s *Service) DeleteVisit(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visit: %w", err)
	}
	return nil
}

func (s *Service) ListNurses(ctx context.Context, id int64, p params.Pagination) ([]model.Nurse, uint64, error) {
	nurses, total, err := s.repo.ListNurses(ctx, id, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list visit nurses: %w", err)
	}
	return nurses, total, nil
}

func (s *Service) ListReports(ctx context.Context, id int64, p params.Pagination) ([]model.Report, uint64, error) {
	reports, total, err := s.repo.ListReports(ctx, id, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list visit reports: %w", err)
	}
	return reports, total, nil
}

func (s *Service) AddNurse(ctx context.Context, id, nurseID int64) error {
	if err := s.repo.AddNurse(ctx, id, nurseID); err != nil {
		return fmt.Errorf("failed to assign nurse: %w", err)
	}
	return nil
}

func (s *Service) RemoveNurse(ctx context.Context, id, nurseID int64) error {
	if err := s.repo.RemoveNurse(ctx, id, nurseID); err != nil {
		return fmt.Errorf("failed to unassign nurse: %w", err)
	}
	return nil
}

// UpdateReport writes the caller's report on a visit it is assigned to.
func (s *Service) UpdateReport(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateReport) error {
	if err := auth.CheckRole(claims, auth.RoleNurse); err != nil {
		return err
	}
	if err := s.repo.UpdateReport(ctx, id, claims.SubjectID, *update.Report); err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}
