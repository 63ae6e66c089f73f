// Package user manages the users rows shared by nurses, managers and
// patients.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/security"
)

type UserServicer interface {
	CreateUser(ctx context.Context, user *model.NewUser) (int64, error)
	UpdateUser(ctx context.Context, id int64, update *model.UpdateUser) error
	DeleteUser(ctx context.Context, id int64) error
}

type Service struct {
	repo   repository.UserRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
	}
}

// CreateUser stores a user. A user created without a password cannot log
// in until one is set.
func (s *Service) CreateUser(ctx context.Context, user *model.NewUser) (int64, error) {
	var hash *string
	if user.Password != nil {
		hashed, err := s.hasher.Hash(*user.Password)
		if err != nil {
			if errors.Is(err, security.ErrPasswordTooShort) {
				return 0, apperrors.NewBadRequest(err.Error(), err)
			}
			return 0, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = &hashed
	}

	id, err := s.repo.Create(ctx, user, hash)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, update *model.UpdateUser) error {
	if update.IsEmpty() {
		return nil
	}
	if err := s.repo.Update(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
