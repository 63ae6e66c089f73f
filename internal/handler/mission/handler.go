package mission

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/mission"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type Handler struct {
	service mission.MissionServicer
}

func NewHandler(service mission.MissionServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	missions := r.Group("/missions", middleware.RequireRoles(auth.RoleManager))
	{
		missions.GET("", h.ListMissions)
		missions.GET("/:id", h.GetMission)
		missions.POST("", h.CreateMission)
		missions.PUT("/:id", h.UpdateMission)
		missions.DELETE("/:id", h.DeleteMission)
	}
}

func (h *Handler) ListMissions(c *gin.Context) {
	q, ok := handler.ListParams(c)
	if !ok {
		return
	}
	missions, total, err := h.service.ListMissions(c.Request.Context(), q)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, missions, q.Pagination, total)
}

func (h *Handler) GetMission(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	mission, err := h.service.GetMission(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, mission)
}

func (h *Handler) CreateMission(c *gin.Context) {
	var req model.NewMission
	if !handler.BindJSON(c, &req) {
		return
	}
	if _, err := h.service.CreateMission(c.Request.Context(), &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) UpdateMission(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateMission
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateMission(c.Request.Context(), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) DeleteMission(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteMission(c.Request.Context(), id); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}
