package nurse

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/calendar"
	"github.com/jwalitptl/homecare-api/internal/service/nurse"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

const calendarContentType = "text/calendar; charset=utf-8"

type Handler struct {
	service  nurse.NurseServicer
	calendar calendar.CalendarServicer
}

func NewHandler(service nurse.NurseServicer, calendar calendar.CalendarServicer) *Handler {
	return &Handler{service: service, calendar: calendar}
}

// RegisterPublicRoutes exposes the calendar feed, which calendar clients
// fetch without a session.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/nurses/:id/ical", middleware.Cache(middleware.DefaultCacheConfig()), h.ExportCalendar)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	nurses := r.Group("/nurses")
	{
		nurses.GET("/me", middleware.RequireRoles(auth.RoleNurse), h.GetMe)

		staff := nurses.Group("", middleware.RequireRoles(auth.RoleManager, auth.RoleNurse))
		staff.GET("/:id", h.GetNurse)
		staff.PUT("/:id", h.UpdateNurse)
		staff.GET("/:id/availabilities", h.ListAvailabilities)
		staff.GET("/:id/reports", h.ListReports)

		managers := nurses.Group("", middleware.RequireRoles(auth.RoleManager))
		managers.GET("", h.ListNurses)
		managers.POST("", h.CreateNurse)
		managers.DELETE("/:id", h.DeleteNurse)
		managers.POST("/:id/skills/:id_skill", h.AddSkill)
		managers.DELETE("/:id/skills/:id_skill", h.RemoveSkill)
	}
}

func (h *Handler) ListNurses(c *gin.Context) {
	q, ok := handler.ListParams(c)
	if !ok {
		return
	}
	nurses, total, err := h.service.ListNurses(c.Request.Context(), q)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, nurses, q.Pagination, total)
}

func (h *Handler) GetMe(c *gin.Context) {
	claims := middleware.CurrentClaims(c)
	h.respondNurse(c, claims, claims.SubjectID)
}

func (h *Handler) GetNurse(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	h.respondNurse(c, middleware.CurrentClaims(c), id)
}

func (h *Handler) respondNurse(c *gin.Context, claims *auth.Claims, id int64) {
	nurse, err := h.service.GetNurse(c.Request.Context(), claims, id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nurse)
}

func (h *Handler) CreateNurse(c *gin.Context) {
	var req model.NewNurse
	if !handler.BindJSON(c, &req) {
		return
	}
	if _, err := h.service.CreateNurse(c.Request.Context(), &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) UpdateNurse(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateNurse
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateNurse(c.Request.Context(), middleware.CurrentClaims(c), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) DeleteNurse(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteNurse(c.Request.Context(), middleware.CurrentClaims(c), id); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) AddSkill(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	skillID, ok := handler.ParseID(c, "id_skill")
	if !ok {
		return
	}
	if err := h.service.AddSkill(c.Request.Context(), middleware.CurrentClaims(c), id, skillID); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) RemoveSkill(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	skillID, ok := handler.ParseID(c, "id_skill")
	if !ok {
		return
	}
	if err := h.service.RemoveSkill(c.Request.Context(), middleware.CurrentClaims(c), id, skillID); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) ListAvailabilities(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	p, ok := handler.PaginationParams(c)
	if !ok {
		return
	}
	availabilities, total, err := h.service.ListAvailabilities(c.Request.Context(), middleware.CurrentClaims(c), id, p)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, availabilities, p, total)
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
	reports, total, err := h.service.ListReports(c.Request.Context(), middleware.CurrentClaims(c), id, p)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, reports, p, total)
}

func (h *Handler) ExportCalendar(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	body, err := h.calendar.ExportNurse(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	c.Data(http.StatusOK, calendarContentType, body)
}
