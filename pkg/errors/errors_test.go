package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", NewNotFound("skill", nil), http.StatusNotFound},
		{"bad request", NewBadRequest("no field to update", nil), http.StatusBadRequest},
		{"forbidden", NewForbidden(""), http.StatusForbidden},
		{"token not provided", TokenNotProvided(), http.StatusUnauthorized},
		{"expired", Expired(nil), http.StatusUnauthorized},
		{"invalid credentials", InvalidCredentials(), http.StatusUnauthorized},
		{"wrapped", fmt.Errorf("failed to get nurse: %w", NewNotFound("nurse", nil)), http.StatusNotFound},
		{"plain", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, Status(tt.err))
		})
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("failed to delete zone: %w", NewNotFound("zone", stderrors.New("sql: no rows in result set")))

	assert.ErrorIs(t, err, NotFoundError)
	assert.NotErrorIs(t, err, BadRequestError)

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "zone not found", appErr.Message)
	assert.Equal(t, "zone not found: sql: no rows in result set", appErr.Error())
}

func TestNewForbiddenDefaultMessage(t *testing.T) {
	assert.Equal(t, "forbidden", NewForbidden("").Message)
}
