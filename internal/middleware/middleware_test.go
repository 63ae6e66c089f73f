package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(exposeInternal bool, handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestID(), ErrorHandler(exposeInternal))
	engine.GET("/", handlers...)
	return engine
}

func get(engine *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		exposeInternal bool
		status         int
		body           string
	}{
		{"not found", apperrors.NewNotFound("nurse", nil), false, http.StatusNotFound, `{"message":"nurse not found"}`},
		{"forbidden", apperrors.NewForbidden("nope"), false, http.StatusForbidden, `{"message":"nope"}`},
		{"hidden internal", errors.New("pq: connection refused"), false, http.StatusInternalServerError, `{"message":"internal server error"}`},
		{"exposed internal", errors.New("pq: connection refused"), true, http.StatusInternalServerError, `{"message":"pq: connection refused"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(tt.exposeInternal, func(c *gin.Context) {
				c.Error(tt.err)
				c.Abort()
			})

			w := get(engine, nil)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}

func TestErrorHandlerKeepsWrittenResponse(t *testing.T) {
	engine := newEngine(false, func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
		c.Error(errors.New("late failure"))
	})

	w := get(engine, nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

func TestRequestID(t *testing.T) {
	engine := newEngine(false, func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := get(engine, nil)
	_, err := uuid.Parse(w.Header().Get(HeaderXRequestID))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderXRequestID, "not a uuid")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.NotEqual(t, "not a uuid", w.Header().Get(HeaderXRequestID))
}

func TestAuthenticate(t *testing.T) {
	codec, err := auth.NewCodec("middleware-secret", auth.DefaultValidity)
	require.NoError(t, err)
	carrier := NewAuthMiddleware(auth.NewCarrier(codec))

	var seen *auth.Claims
	engine := newEngine(false, carrier.Authenticate(), RequireRoles(auth.RoleManager), func(c *gin.Context) {
		seen = CurrentClaims(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("no cookie", func(t *testing.T) {
		w := get(engine, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"token not provided"}`, w.Body.String())
	})

	t.Run("garbage cookie", func(t *testing.T) {
		w := get(engine, &http.Cookie{Name: auth.CookieName, Value: "garbage"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong role", func(t *testing.T) {
		cookie, err := auth.NewCarrier(codec).Attach(codec.Issue(5, auth.RoleNurse, 1, nil))
		require.NoError(t, err)

		w := get(engine, cookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("manager", func(t *testing.T) {
		cookie, err := auth.NewCarrier(codec).Attach(codec.Issue(2, auth.RoleManager, 3, nil))
		require.NoError(t, err)

		w := get(engine, cookie)
		assert.Equal(t, http.StatusNoContent, w.Code)
		require.NotNil(t, seen)
		assert.Equal(t, int64(2), seen.SubjectID)
		assert.Equal(t, int64(3), seen.CenterID)
	})
}

func TestCurrentClaimsWithoutAuthentication(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentClaims(c))
}
