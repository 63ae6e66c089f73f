package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

type stubUsers struct {
	repository.UserRepository
	users      map[string]model.User
	passwords  map[string]string
	identities map[int64]model.Identity
}

func (r *stubUsers) Authenticate(_ context.Context, mail, password string) (*model.User, error) {
	user, ok := r.users[mail]
	if !ok || r.passwords[mail] != password {
		return nil, apperrors.NewNotFound("user", nil)
	}
	return &user, nil
}

func (r *stubUsers) Identity(_ context.Context, userID int64) (*model.Identity, error) {
	identity, ok := r.identities[userID]
	if !ok {
		return nil, apperrors.NewNotFound("manager", nil)
	}
	return &identity, nil
}

func (r *stubUsers) GetBySubject(_ context.Context, role auth.Role, subjectID int64) (*model.User, error) {
	for _, u := range r.users {
		identity := r.identities[u.ID]
		if identity.Role == role && identity.SubjectID == subjectID {
			return &u, nil
		}
	}
	return nil, apperrors.NewNotFound("user", nil)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	zone := int64(4)
	repo := &stubUsers{
		users: map[string]model.User{
			"nurse@example.com":   {ID: 10, UserInfo: model.UserInfo{FirstName: "Nina", Mail: "nurse@example.com"}, IDCenter: 2},
			"manager@example.com": {ID: 20, UserInfo: model.UserInfo{FirstName: "Max", Mail: "manager@example.com"}, IDCenter: 2},
			"orphan@example.com":  {ID: 30, UserInfo: model.UserInfo{FirstName: "Olga", Mail: "orphan@example.com"}, IDCenter: 2},
		},
		passwords: map[string]string{
			"nurse@example.com":   "nurse-password",
			"manager@example.com": "manager-password",
			"orphan@example.com":  "orphan-password",
		},
		identities: map[int64]model.Identity{
			10: {SubjectID: 5, Role: auth.RoleNurse, IDCenter: 2, IDZone: &zone},
			20: {SubjectID: 1, Role: auth.RoleManager, IDCenter: 2},
		},
	}
	codec, err := auth.NewCodec("secret", auth.DefaultValidity)
	require.NoError(t, err)
	return NewService(repo, codec)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	t.Run("nurse", func(t *testing.T) {
		logged, claims, err := svc.Login(context.Background(), &model.LoginUser{Mail: "nurse@example.com", Password: "nurse-password"})
		require.NoError(t, err)

		assert.Equal(t, int64(10), logged.ID)
		assert.Equal(t, auth.RoleNurse, logged.Role)
		assert.Equal(t, int64(2), logged.IDCenter)
		require.NotNil(t, logged.IDZone)
		assert.Equal(t, int64(4), *logged.IDZone)

		assert.Equal(t, int64(5), claims.SubjectID)
		assert.Equal(t, auth.RoleNurse, claims.Role)
	})

	t.Run("manager", func(t *testing.T) {
		logged, claims, err := svc.Login(context.Background(), &model.LoginUser{Mail: "manager@example.com", Password: "manager-password"})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleManager, logged.Role)
		assert.Nil(t, logged.IDZone)
		assert.Equal(t, int64(1), claims.SubjectID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), &model.LoginUser{Mail: "nurse@example.com", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.InvalidCredentialsError)
	})

	t.Run("unknown mail", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), &model.LoginUser{Mail: "ghost@example.com", Password: "nurse-password"})
		assert.ErrorIs(t, err, apperrors.InvalidCredentialsError)
	})

	t.Run("user without role", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), &model.LoginUser{Mail: "orphan@example.com", Password: "orphan-password"})
		assert.ErrorIs(t, err, apperrors.InvalidCredentialsError)
	})
}

func TestInfo(t *testing.T) {
	svc := newTestService(t)
	zone := int64(4)

	logged, err := svc.Info(context.Background(), &auth.Claims{SubjectID: 5, Role: auth.RoleNurse, CenterID: 2, ZoneID: &zone})
	require.NoError(t, err)
	assert.Equal(t, "Nina", logged.FirstName)
	assert.Equal(t, auth.RoleNurse, logged.Role)

	_, err = svc.Info(context.Background(), &auth.Claims{SubjectID: 99, Role: auth.RoleManager})
	assert.ErrorIs(t, err, apperrors.NotFoundError)
}
