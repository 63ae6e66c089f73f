package auth

import (
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

// CheckRole allows the caller only if its role is one of allowed.
func CheckRole(claims *Claims, allowed ...Role) error {
	if claims == nil {
		return apperrors.TokenNotProvided()
	}
	for _, role := range allowed {
		if claims.Role == role {
			return nil
		}
	}
	return apperrors.NewForbidden("role not allowed")
}

// CheckSelf restricts nurses to their own subject id. Managers pass.
func CheckSelf(claims *Claims, targetID int64) error {
	if claims == nil {
		return apperrors.TokenNotProvided()
	}
	if claims.Role == RoleNurse && claims.SubjectID != targetID {
		return apperrors.NewForbidden("a nurse can only access its own resources")
	}
	return nil
}

// CheckTenant requires the resource to belong to the caller's center.
func CheckTenant(claims *Claims, centerID int64) error {
	if claims == nil {
		return apperrors.TokenNotProvided()
	}
	if claims.CenterID != centerID {
		return apperrors.NewForbidden("resource belongs to another center")
	}
	return nil
}
