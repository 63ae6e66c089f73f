package patient

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

type PatientServicer interface {
	ListPatients(ctx context.Context, q params.List) ([]model.Patient, uint64, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	CreatePatient(ctx context.Context, patient *model.NewPatient) (int64, error)
	UpdatePatient(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdatePatient) error
	DeletePatient(ctx context.Context, claims *auth.Claims, id int64) error
}

type Service struct {
	tx        repository.Transactor
	repo      repository.PatientRepository
	addresses repository.AddressRepository
	users     user.UserServicer
}

func NewService(tx repository.Transactor, repo repository.PatientRepository,
	addresses repository.AddressRepository, users user.UserServicer) *Service {
	return &Service{
		tx:        tx,
		repo:      repo,
		addresses: addresses,
		users:     users,
	}
}

func (s *Service) ListPatients(ctx context.Context, q params.List) ([]model.Patient, uint64, error) {
	patients, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, total, nil
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// CreatePatient stores the user, the address and the patient in one
// transaction.
func (s *Service) CreatePatient(ctx context.Context, patient *model.NewPatient) (int64, error) {
	var id int64
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		userID, err := s.users.CreateUser(ctx, &patient.NewUser)
		if err != nil {
			return err
		}

		addressID, err := s.addresses.Create(ctx, &patient.Address)
		if err != nil {
			return fmt.Errorf("failed to create address: %w", err)
		}

		id, err = s.repo.Create(ctx, userID, addressID)
		if err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		return nil
	})
	return id, err
}

func (s *Service) UpdatePatient(ctx context.Context, claims *auth.Claims, id int64, update *model.UpdatePatient) error {
	if update.IsEmpty() {
		return apperrors.NewBadRequest("no field to update", nil)
	}

	owned, err := s.owned(ctx, claims, id)
	if err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
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

// DeletePatient removes the patient with its user and address.
func (s *Service) DeletePatient(ctx context.Context, claims *auth.Claims, id int64) error {
	if _, err := s.owned(ctx, claims, id); err != nil {
		return err
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		owned, err := s.repo.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete patient: %w", err)
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

// owned returns the rows owned by a patient of the caller's center.
func (s *Service) owned(ctx context.Context, claims *auth.Claims, id int64) (*model.Owned, error) {
	owned, err := s.repo.Owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if err := auth.CheckTenant(claims, owned.IDCenter); err != nil {
		return nil, err
	}
	return owned, nil
}
