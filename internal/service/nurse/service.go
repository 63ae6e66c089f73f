package nurse

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

type NurseServicer interface {
	ListNurses(ctx context.Context, q params.List) ([]model.SkilledNurse, uint64, error)
	GetNurse(ctx context.Context, claims *auth.Claims, id int64) (*model.SkilledNurse, error)
	CreateNurse(ctx context.Context, nurse *model.NewNurse) (int64, error)
	UpdateNurse(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateNurse) error
	DeleteNurse(ctx context.Context, claims *auth.Claims, id int64) error
	AddSkill(ctx context.Context, claims *auth.Claims, id, skillID int64) error
	RemoveSkill(ctx context.Context, claims *auth.Claims, id, skillID int64) error
	ListAvailabilities(ctx context.Context, claims *auth.Claims, id int64, p params.Pagination) ([]model.Availability, uint64, error)
	ListReports(ctx context.Context, claims *auth.Claims, id int64, p params.Pagination) ([]model.Report, uint64, error)
}

type Service struct {
	tx        repository.Transactor
	repo      repository.NurseRepository
	addresses repository.AddressRepository
	users     user.UserServicer
}

func NewService(tx repository.Transactor, repo repository.NurseRepository,
	addresses repository.AddressRepository, users user.UserServicer) *Service {
	return &Service{
		tx:        tx,
		repo:      repo,
		addresses: addresses,
		users:     users,
	}
}

func (s *Service) ListNurses(ctx context.Context, q params.List) ([]model.SkilledNurse, uint64, error) {
	nurses, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list nurses: %w", err)
	}

	ids := make([]int64, len(nurses))
	for i, n := range nurses {
		ids[i] = n.ID
	}
	skills, err := s.repo.Skills(ctx, ids...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list nurse skills: %w", err)
	}

	result := make([]model.SkilledNurse, len(nurses))
	for i, n := range nurses {
		result[i] = skilled(n, skills[n.ID])
	}
	return result, total, nil
}

// GetNurse returns a nurse with its skills. Nurses may only read
// themselves.
func (s *Service) GetNurse(ctx context.Context, claims *auth.Claims, id int64) (*model.SkilledNurse, error) {
	if err := auth.CheckSelf(claims, id); err != nil {
		return nil, err
	}

	nurse, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get nurse: %w", err)
	}
	skills, err := s.repo.Skills(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list nurse skills: %w", err)
	}

	result := skilled(*nurse, skills[id])
	return &result, nil
}

// CreateNurse stores the address, the user and the nurse in one
// transaction.
func (s *Service) CreateNurse(ctx context.Context, nurse *model.NewNurse) (int64, error) {
	var id int64
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		addressID, err := s.addresses.Create(ctx, &nurse.Address)
		if err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}

		userID, err := s.users.CreateUser(ctx, &nurse.NewUser)
		if err != nil {
			return err
		}

		id, err = s.repo.Create(ctx, nurse.MinutesPerWeek, userID, addressID)
		if err != nil {
			return fmt.Errorf("failed to create nurse: %w", err)
		}
		return nil
	})
	return id, err
}

// UpdateNurse applies the present fields to the nurse, its user and its
// address in one transaction. Nurses may only update themselves.
func (s *Service) UpdateNurse(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdateNurse) error {
	if err := auth.CheckSelf(claims, id); err != nil {
		return err
	}
	if update.IsEmpty() {
		return apperrors.NewBadRequest("no field to update", nil)
	}

	owned, err := s.repo.Owned(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get nurse: %w", err)
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if update.MinutesPerWeek != nil {
			if err := s.repo.Update(ctx, id, *update.MinutesPerWeek); err != nil {
				return fmt.Errorf("failed to update nurse: %w", err)
			}
		}
		if err := s.users.UpdateUser(ctx, owned.IDUser, &update.UpdateUser); err != nil {
			return err
		}
		if update.Address != nil && !update.Address.IsEmpty() {
			if err := s.addresses.Update(ctx, owned.IDAddress, update.Address); err != nil {
				return fmt.Errorf("failed to update address: %w", err)
			}
		}
		return nil
	})
}

// DeleteNurse removes the nurse with its user and address. Only managers
// of the nurse's center may do so.
func (s *Service) DeleteNurse(ctx context.Context, claims *auth.Claims, id int64) error {
	if err := s.checkTenant(ctx, claims, id); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		owned, err := s.repo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete nurse: %w", err)
		}
		if err := s.users.DeleteUser(ctx, owned.IDUser); err != nil {
			return err
		}
		if err := s.addresses.Delete(ctx, owned.IDAddress); err != nil {
			return fmt.Errorf("failed to delete address: %w", err)
		}
		return nil
	})
}

func (s *Service) AddSkill(ctx context.Context, claims *auth.Claims, id, skillID int64) error {
	if err := s.checkTenant(ctx, claims, id); err != nil {
		return err
	}
	if err := s.repo.AddSkill(ctx, id, skillID); err != nil {
		return fmt.Errorf("failed to associate skill: %w", err)
	}
	return nil
}

func (s *Service) RemoveSkill(ctx context.Context, claims *auth.Claims, id, skillID int64) error {
	if err := s.checkTenant(ctx, claims, id); err != nil {
		return err
	}
	if err := s.repo.RemoveSkill(ctx, id, skillID); err != nil {
		return fmt.Errorf("failed to dissociate skill: %w", err)
	}
	return nil
}

func (s *Service) ListAvailabilities(ctx context.Context, claims *auth.Claims, id int64, p params.Pagination) ([]model.Availability, uint64, error) {
	if err := auth.CheckSelf(claims, id); err != nil {
		return nil, 0, err
	}
	availabilities, total, err := s.repo.ListAvailabilities(ctx, id, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list availabilities: %w", err)
	}
	return availabilities, total, nil
}

func (s *Service) ListReports(ctx context.Context, claims *auth.Claims, id int64, p params.Pagination) ([]model.Report, uint64, error) {
	if err := auth.CheckSelf(claims, id); err != nil {
		return nil, 0, err
	}
	reports, total, err := s.repo.ListReports(ctx, id, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, total, nil
}

func (s *Service) checkTenant(ctx context.Context, claims *auth.Claims, id int64) error {
	owned, err := s.repo.Owned(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get nurse: %w", err)
	}
	return auth.CheckTenant(claims, owned.IDCenter)
}

func skilled(n model.Nurse, skills []model.Skill) model.SkilledNurse {
	if skills == nil {
		skills = []model.Skill{}
	}
	return model.SkilledNurse{Nurse: n, Skills: skills}
}
