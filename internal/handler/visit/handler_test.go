package visit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/visit"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type assignment struct{ visit, nurse int64 }

type stubService struct {
	visit.VisitServicer
	assigned map[assignment]string
}

func (s *stubService) RemoveNurse(_ context.Context, id, nurseID int64) error {
	key := assignment{id, nurseID}
	if _, ok := s.assigned[key]; !ok {
		return apperrors.NewNotFound("visit nurse", nil)
	}
	delete(s.assigned, key)
	return nil
}

func (s *stubService) UpdateReport(_ context.Context, claims *auth.Claims, id int64, update *model.UpdateReport) error {
	key := assignment{id, claims.SubjectID}
	if _, ok := s.assigned[key]; !ok {
		return apperrors.NewNotFound("visit assignment", nil)
	}
	s.assigned[key] = *update.Report
	return nil
}

func newTestRouter(svc visit.VisitServicer, claims *auth.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidation()

	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextClaims, claims)
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestRemoveNurse(t *testing.T) {
	svc := &stubService{assigned: map[assignment]string{{3, 5}: ""}}
	manager := &auth.Claims{SubjectID: 1, Role: auth.RoleManager, CenterID: 1}
	r := newTestRouter(svc, manager)

	w := serve(r, http.MethodDelete, "/visits/3/nurses/5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.assigned)

	w = serve(r, http.MethodDelete, "/visits/3/nurses/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "visit nurse not found", message(t, w))

	w = serve(r, http.MethodDelete, "/visits/3/nurses/x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateReport(t *testing.T) {
	svc := &stubService{assigned: map[assignment]string{{3, 5}: ""}}
	nurse := &auth.Claims{SubjectID: 5, Role: auth.RoleNurse, CenterID: 1}
	r := newTestRouter(svc, nurse)

	w := serve(r, http.MethodPut, "/visits/3/report", `{"report":"all good"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "all good", svc.assigned[assignment{3, 5}])

	w = serve(r, http.MethodPut, "/visits/4/report", `{"report":"all good"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "visit assignment not found", message(t, w))

	w = serve(r, http.MethodPut, "/visits/3/report", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVisitRoutesRequireRole(t *testing.T) {
	svc := &stubService{assigned: map[assignment]string{{3, 5}: ""}}

	nurse := &auth.Claims{SubjectID: 5, Role: auth.RoleNurse, CenterID: 1}
	w := serve(newTestRouter(svc, nurse), http.MethodDelete, "/visits/3/nurses/5", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, svc.assigned, assignment{3, 5})

	manager := &auth.Claims{SubjectID: 1, Role: auth.RoleManager, CenterID: 1}
	w = serve(newTestRouter(svc, manager), http.MethodPut, "/visits/3/report", `{"report":"x"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, svc.assigned[assignment{3, 5}])
}
