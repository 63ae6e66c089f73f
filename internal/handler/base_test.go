package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

func newContext(method, target, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestParseID(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: "42"}, {Key: "id_skill", Value: "x"}}

	id, ok := ParseID(c, "id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = ParseID(c, "id_skill")
	assert.False(t, ok)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, apperrors.BadRequestError)
}

func TestBindJSON(t *testing.T) {
	middleware.RegisterValidation()

	t.Run("valid", func(t *testing.T) {
		c := newContext(http.MethodPost, "/", `{"mail":"a@b.c","password":"secret"}`)
		var req model.LoginUser
		assert.True(t, BindJSON(c, &req))
		assert.Equal(t, "a@b.c", req.Mail)
	})

	t.Run("missing field", func(t *testing.T) {
		c := newContext(http.MethodPost, "/", `{"mail":"a@b.c"}`)
		var req model.LoginUser
		assert.False(t, BindJSON(c, &req))

		appErr, ok := apperrors.As(c.Errors.Last().Err)
		require.True(t, ok)
		assert.Equal(t, "password is required", appErr.Message)
	})

	t.Run("malformed", func(t *testing.T) {
		c := newContext(http.MethodPost, "/", `{"mail":`)
		var req model.LoginUser
		assert.False(t, BindJSON(c, &req))
		assert.ErrorIs(t, c.Errors.Last().Err, apperrors.BadRequestError)
	})
}

func TestBindNewNurseMinutes(t *testing.T) {
	middleware.RegisterValidation()

	body := func(minutes string) string {
		return `{"minutes_per_week":` + minutes + `,"fname":"Ann","lname":"Lee","mail":"ann@lee.fr","id_center":1,` +
			`"address":{"street_name":"quai Sud","postcode":"69000","city_name":"Lyon","id_zone":2}}`
	}

	c := newContext(http.MethodPost, "/", body("0"))
	var zero model.NewNurse
	require.True(t, BindJSON(c, &zero))
	assert.Equal(t, int32(0), zero.MinutesPerWeek)

	c = newContext(http.MethodPost, "/", body("1200"))
	var full model.NewNurse
	require.True(t, BindJSON(c, &full))
	assert.Equal(t, int32(1200), full.MinutesPerWeek)

	c = newContext(http.MethodPost, "/", body("-1"))
	var negative model.NewNurse
	assert.False(t, BindJSON(c, &negative))
	assert.ErrorIs(t, c.Errors.Last().Err, apperrors.BadRequestError)
}

func TestListParams(t *testing.T) {
	c := newContext(http.MethodGet, "/?page=2&per_page=15&search=ann&sort=lname:desc", "")
	q, ok := ListParams(c)
	require.True(t, ok)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 15, q.PerPage)

	c = newContext(http.MethodGet, "/?sort=lname:sideways", "")
	_, ok = ListParams(c)
	assert.False(t, ok)
	assert.ErrorIs(t, c.Errors.Last().Err, apperrors.BadRequestError)
}
