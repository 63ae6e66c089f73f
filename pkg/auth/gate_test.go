package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

func TestCheckRole(t *testing.T) {
	nurse := &Claims{SubjectID: 5, Role: RoleNurse, CenterID: 1}
	manager := &Claims{SubjectID: 1, Role: RoleManager, CenterID: 1}

	assert.NoError(t, CheckRole(manager, RoleManager))
	assert.NoError(t, CheckRole(nurse, RoleManager, RoleNurse))
	assert.ErrorIs(t, CheckRole(nurse, RoleManager), apperrors.ForbiddenError)
	assert.ErrorIs(t, CheckRole(manager, RoleNurse), apperrors.ForbiddenError)
	assert.ErrorIs(t, CheckRole(nil, RoleManager), apperrors.TokenNotProvidedError)
}

func TestCheckSelf(t *testing.T) {
	nurse := &Claims{SubjectID: 5, Role: RoleNurse, CenterID: 1}
	manager := &Claims{SubjectID: 1, Role: RoleManager, CenterID: 1}

	assert.NoError(t, CheckSelf(nurse, 5))
	assert.ErrorIs(t, CheckSelf(nurse, 7), apperrors.ForbiddenError)
	assert.NoError(t, CheckSelf(manager, 7))
}

func TestCheckTenant(t *testing.T) {
	claims := &Claims{SubjectID: 1, Role: RoleManager, CenterID: 3}

	assert.NoError(t, CheckTenant(claims, 3))
	assert.ErrorIs(t, CheckTenant(claims, 4), apperrors.ForbiddenError)
}
