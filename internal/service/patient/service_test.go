package patient

import (
	"context"
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

// store keeps the rows touched by patient operations.
type store struct {
	patients  map[int64]model.Owned
	users     map[int64]model.UpdateUser
	addresses map[int64]bool
	nextID    int64
	failAddr  error
}

func newStore() *store {
	return &store{
		patients: map[int64]model.Owned{
			1: {IDUser: 10, IDAddress: 100, IDCenter: 1},
			2: {IDUser: 20, IDAddress: 200, IDCenter: 2},
		},
		users:     map[int64]model.UpdateUser{10: {}, 20: {}},
		addresses: map[int64]bool{100: true, 200: true},
		nextID:    1000,
	}
}

func (s *store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	patients, users, addresses := maps.Clone(s.patients), maps.Clone(s.users), maps.Clone(s.addresses)
	if err := fn(ctx); err != nil {
		s.patients, s.users, s.addresses = patients, users, addresses
		return err
	}
	return nil
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

type stubPatients struct {
	repository.PatientRepository
	*store
}

func (r stubPatients) Create(_ context.Context, userID, addressID int64) (int64, error) {
	id := r.id()
	r.patients[id] = model.Owned{IDUser: userID, IDAddress: addressID, IDCenter: 1}
	return id, nil
}

func (r stubPatients) Owned(_ context.Context, id int64) (*model.Owned, error) {
	owned, ok := r.patients[id]
	if !ok {
		return nil, apperrors.NewNotFound("patient", nil)
	}
	return &owned, nil
}

func (r stubPatients) Delete(ctx context.Context, id int64) (*model.Owned, error) {
	owned, err := r.Owned(ctx, id)
	if err != nil {
		return nil, err
	}
	delete(r.patients, id)
	return owned, nil
}

type stubAddresses struct {
	repository.AddressRepository
	*store
}

func (r stubAddresses) Create(context.Context, *model.NewAddress) (int64, error) {
	id := r.id()
	r.addresses[id] = true
	return id, nil
}

func (r stubAddresses) Update(context.Context, int64, *model.UpdateAddress) error {
	return r.failAddr
}

func (r stubAddresses) Delete(_ context.Context, id int64) error {
	if r.failAddr != nil {
		return r.failAddr
	}
	delete(r.addresses, id)
	return nil
}

type stubUsers struct{ *store }

func (u stubUsers) CreateUser(context.Context, *model.NewUser) (int64, error) {
	id := u.id()
	u.users[id] = model.UpdateUser{}
	return id, nil
}

func (u stubUsers) UpdateUser(_ context.Context, id int64, update *model.UpdateUser) error {
	u.users[id] = *update
	return nil
}

func (u stubUsers) DeleteUser(_ context.Context, id int64) error {
	delete(u.users, id)
	return nil
}

func newTestService() (*Service, *store) {
	s := newStore()
	return NewService(s, stubPatients{store: s}, stubAddresses{store: s}, stubUsers{s}), s
}

var manager = &auth.Claims{SubjectID: 1, Role: auth.RoleManager, CenterID: 1}

func TestCreatePatient(t *testing.T) {
	svc, s := newTestService()

	id, err := svc.CreatePatient(context.Background(), &model.NewPatient{
		NewUser: model.NewUser{FirstName: "Paul", LastName: "Durand", Mail: "paul@example.com", IDCenter: 1},
		Address: model.NewAddress{StreetName: "rue Neuve"},
	})
	require.NoError(t, err)

	owned := s.patients[id]
	assert.Contains(t, s.users, owned.IDUser)
	assert.True(t, s.addresses[owned.IDAddress])
}

func TestUpdatePatient(t *testing.T) {
	name := "Paula"

	t.Run("empty", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.UpdatePatient(context.Background(), manager, 1, &model.UpdatePatient{})
		assert.ErrorIs(t, err, apperrors.BadRequestError)
	})

	t.Run("other center", func(t *testing.T) {
		svc, s := newTestService()
		err := svc.UpdatePatient(context.Background(), manager, 2, &model.UpdatePatient{UpdateUser: model.UpdateUser{FirstName: &name}})
		assert.ErrorIs(t, err, apperrors.ForbiddenError)
		assert.Nil(t, s.users[20].FirstName)
	})

	t.Run("rolls back user on address failure", func(t *testing.T) {
		svc, s := newTestService()
		s.failAddr = errors.New("connection reset")
		street := "rue Basse"

		err := svc.UpdatePatient(context.Background(), manager, 1, &model.UpdatePatient{
			UpdateUser: model.UpdateUser{FirstName: &name},
			Address:    &model.UpdateAddress{StreetName: &street},
		})
		require.Error(t, err)
		assert.Nil(t, s.users[10].FirstName)
	})

	t.Run("ok", func(t *testing.T) {
		svc, s := newTestService()
		err := svc.UpdatePatient(context.Background(), manager, 1, &model.UpdatePatient{UpdateUser: model.UpdateUser{FirstName: &name}})
		require.NoError(t, err)
		assert.Equal(t, &name, s.users[10].FirstName)
	})
}

func TestDeletePatient(t *testing.T) {
	t.Run("cascades", func(t *testing.T) {
		svc, s := newTestService()
		require.NoError(t, svc.DeletePatient(context.Background(), manager, 1))

		assert.NotContains(t, s.patients, int64(1))
		assert.NotContains(t, s.users, int64(10))
		assert.NotContains(t, s.addresses, int64(100))
		assert.Len(t, s.patients, 1)
	})

	t.Run("atomic", func(t *testing.T) {
		svc, s := newTestService()
		s.failAddr = errors.New("connection reset")

		require.Error(t, svc.DeletePatient(context.Background(), manager, 1))
		assert.Contains(t, s.patients, int64(1))
		assert.Contains(t, s.users, int64(10))
		assert.True(t, s.addresses[100])
	})

	t.Run("other center", func(t *testing.T) {
		svc, s := newTestService()
		err := svc.DeletePatient(context.Background(), manager, 2)
		assert.ErrorIs(t, err, apperrors.ForbiddenError)
		assert.Contains(t, s.patients, int64(2))
	})

	t.Run("unknown", func(t *testing.T) {
		svc, _ := newTestService()
		err := svc.DeletePatient(context.Background(), manager, 9)
		assert.ErrorIs(t, err, apperrors.NotFoundError)
	})
}
