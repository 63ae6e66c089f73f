package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/repository"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

type AuthServicer interface {
	Login(ctx context.Context, credentials *model.LoginUser) (*model.LoggedUser, *auth.Claims, error)
	Info(ctx context.Context, claims *auth.Claims) (*model.LoggedUser, error)
}

type Service struct {
	users repository.UserRepository
	codec *auth.Codec
}

func NewService(users repository.UserRepository, codec *auth.Codec) *Service {
	return &Service{
		users: users,
		codec: codec,
	}
}

// Login checks the credentials, resolves whether the user is a nurse or a
// manager and issues the matching claims.
func (s *Service) Login(ctx context.Context, credentials *model.LoginUser) (*model.LoggedUser, *auth.Claims, error) {
	user, err := s.users.Authenticate(ctx, credentials.Mail, credentials.Password)
	if err != nil {
		if errors.Is(err, apperrors.NotFoundError) {
			return nil, nil, apperrors.InvalidCredentials()
		}
		return nil, nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	identity, err := s.users.Identity(ctx, user.ID)
	if err != nil {
		if errors.Is(err, apperrors.NotFoundError) {
			log.Warn().Int64("user_id", user.ID).Msg("user is neither a nurse nor a manager")
			return nil, nil, apperrors.InvalidCredentials()
		}
		return nil, nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	claims := s.codec.Issue(identity.SubjectID, identity.Role, identity.IDCenter, identity.IDZone)
	log.Info().
		Int64("subject_id", identity.SubjectID).
		Str("role", string(identity.Role)).
		Msg("user logged in")

	return loggedUser(user, claims), claims, nil
}

// Info returns the profile of the caller.
func (s *Service) Info(ctx context.Context, claims *auth.Claims) (*model.LoggedUser, error) {
	user, err := s.users.GetBySubject(ctx, claims.Role, claims.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return loggedUser(user, claims), nil
}

func loggedUser(user *model.User, claims *auth.Claims) *model.LoggedUser {
	return &model.LoggedUser{
		ID:       user.ID,
		UserInfo: user.UserInfo,
		Role:     claims.Role,
		IDCenter: claims.CenterID,
		IDZone:   claims.ZoneID,
	}
}
