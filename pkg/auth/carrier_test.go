package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

func TestCarrierAttach(t *testing.T) {
	carrier := NewCarrier(newTestCodec(t))

	cookie, err := carrier.Attach(carrier.Codec().Issue(2, RoleManager, 1, nil))
	require.NoError(t, err)

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 4*60*60, cookie.MaxAge)
	assert.NotEmpty(t, cookie.Value)
}

func TestCarrierExtract(t *testing.T) {
	carrier := NewCarrier(newTestCodec(t))

	t.Run("missing cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := carrier.Extract(req)
		assert.ErrorIs(t, err, apperrors.TokenNotProvidedError)
	})

	t.Run("valid cookie", func(t *testing.T) {
		cookie, err := carrier.Attach(carrier.Codec().Issue(7, RoleNurse, 1, nil))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)

		claims, err := carrier.Extract(req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.SubjectID)
		assert.Equal(t, RoleNurse, claims.Role)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		_, err := carrier.Extract(req)
		assert.ErrorIs(t, err, apperrors.MalformedTokenError)
	})
}

func TestCarrierClear(t *testing.T) {
	cookie := NewCarrier(newTestCodec(t)).Clear()

	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
	assert.Equal(t, int64(0), cookie.Expires.Unix())
}
