package manager

import (
	"context"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/internal/service/user"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/params"
)

type ManagerServicer interface {
	ListManagers(ctx context.Context, q params.List) ([]model.Manager, uint64, error)
	GetManager(ctx context.Context, id int64) (*model.Manager, error)
	CreateManager(ctx context.Context, manager *model.NewManager) (int64, error)
	UpdateManager(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateUser) error
	DeleteManager(ctx context.Context, claims *auth.Claims, id int64) error
}

type Service struct {
	tx    repository.Transactor
	repo  repository.ManagerRepository
	users user.UserServicer
}

func NewService(tx repository.Transactor, repo repository.ManagerRepository, users user.UserServicer) *Service {
	return &Service{
		tx:    tx,
		repo:  repo,
		users: users,
	}
}

func (s *Service) ListManagers(ctx context.Context, q params.List) ([]model.Manager, uint64, error) {
	managers, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list managers: %w", err)
	}
	return managers, total, nil
}

func (s *Service) GetManager(ctx context.Context, id int64) (*model.Manager, error) {
	manager, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get manager: %w", err)
	}
	return manager, nil
}

// CreateManager stores the user and the manager, both in the user's center.
func (s *Service) CreateManager(ctx context.Context, manager *model.NewManager) (int64, error) {
	var id int64
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		userID, err := s.users.CreateUser(ctx, &manager.NewUser)
		if err != nil {
			return err
		}

		id, err = s.repo.Create(ctx, userID, manager.IDCenter)
		if err != nil {
			return fmt.Errorf("failed to create manager: %w", err)
		}
		return nil
	})
	return id, err
}

// UpdateManager changes the user profile of the caller. A manager cannot
// edit another manager.
func (s *Service) UpdateManager(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateUser) error {
	if claims == nil {
		return apperrors.TokenNotProvided()
	}
	if claims.SubjectID != id {
		return apperrors.NewForbidden("a manager can only update itself")
	}
	if update.IsEmpty() {
		return apperrors.NewBadRequest("no field to update", nil)
	}

	manager, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get manager: %w", err)
	}
	return s.users.UpdateUser(ctx, manager.IDUser, update)
}

// DeleteManager removes a manager of the caller's center and its user.
func (s *Service) DeleteManager(ctx context.Context, claims *auth.Claims, id int64) error {
	manager, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get manager: %w", err)
	}
	if err := auth.CheckTenant(claims, manager.IDCenter); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		owned, err := s.repo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete manager: %w", err)
		}
		return s.users.DeleteUser(ctx, owned.IDUser)
	})
}
