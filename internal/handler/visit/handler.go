package visit

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/visit"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type Handler struct {
	service visit.VisitServicer
}

func NewHandler(service visit.VisitServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	visits := r.Group("/visits")
	{
		staff := visits.Group("", middleware.RequireRoles(auth.RoleManager, auth.RoleNurse))
		staff.GET("/:id", h.GetVisit)
		staff.GET("/:id/nurses", h.ListNurses)

		visits.PUT("/:id/report", middleware.RequireRoles(auth.RoleNurse), h.UpdateReport)

		managers := visits.Group("", middleware.RequireRoles(auth.RoleManager))
		managers.GET("", h.ListVisits)
		managers.GET("/:id/reports", h.ListReports)
		managers.POST("", h.CreateVisit)
		managers.PUT("/:id", h.UpdateVisit)
		managers.DELETE("/:id", h.DeleteVisit)
		managers.POST("/:id/nurses/:id_nurse", h.AddNurse)
		managers.DELETE("/:id/nurses/:id_nurse", h.RemoveNurse)
	}
}

func (h *Handler) ListVisits(c *gin.Context) {
	q, ok := handler.ListParams(c)
	if !ok {
		return
	}
	visits, total, err := h.service.ListVisits(c.Request.Context(), q)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, visits, q.Pagination, total)
}

func (h *Handler) GetVisit(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	visit, err := h.service.GetVisit(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, visit)
}

// CreateVisit answers with the id of the new visit.
func (h *Handler) CreateVisit(c *gin.Context) {
	var req model.NewVisit
	if !handler.BindJSON(c, &req) {
		return
	}
	id, err := h.service.CreateVisit(c.Request.Context(), &req)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, id)
}

func (h *Handler) UpdateVisit(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateVisit
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateVisit(c.Request.Context(), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) DeleteVisit(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteVisit(c.Request.Context(), id); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) ListNurses(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	p, ok := handler.PaginationParams(c)
	if !ok {
		return
	}
	nurses, total, err := h.service.ListNurses(c.Request.Context(), id, p)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, nurses, p, total)
}

func (h *Handler) ListReports(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	p, ok := handler.PaginationParams(c)
	if !ok {
		return
	}
	reports, total, err := h.service.ListReports(c.Request.Context(), id, p)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, reports, p, total)
}

func (h *Handler) AddNurse(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	nurseID, ok := handler.ParseID(c, "id_nurse")
	if !ok {
		return
	}
	if err := h.service.AddNurse(c.Request.Context(), id, nurseID); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) RemoveNurse(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	nurseID, ok := handler.ParseID(c, "id_nurse")
	if !ok {
		return
	}
	if err := h.service.RemoveNurse(c.Request.Context(), id, nurseID); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

// UpdateReport writes the caller's report on a visit it is assigned to.
func (h *Handler) UpdateReport(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateReport
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateReport(c.Request.Context(), middleware.CurrentClaims(c), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}
