package missiontype

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/missiontype"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type Handler struct {
	service missiontype.MissionTypeServicer
}

func NewHandler(service missiontype.MissionTypeServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	types := r.Group("/mission_types", middleware.RequireRoles(auth.RoleManager))
	{
		types.GET("", h.ListMissionTypes)
		types.GET("/:id", h.GetMissionType)
		types.POST("", h.CreateMissionType)
		types.PUT("/:id", h.UpdateMissionType)
		types.DELETE("/:id", h.DeleteMissionType)

		types.POST("/:id/skills/:id_skill", h.AddSkill)
		types.DELETE("/:id/skills/:id_skill", h.RemoveSkill)
	}
}

func (h *Handler) ListMissionTypes(c *gin.Context) {
	q, ok := handler.ListParams(c)
	if !ok {
		return
	}
	types, total, err := h.service.ListMissionTypes(c.Request.Context(), q)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, types, q.Pagination, total)
}

func (h *Handler) GetMissionType(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	missionType, err := h.service.GetMissionType(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, missionType)
}

func (h *Handler) CreateMissionType(c *gin.Context) {
	var req model.NewMissionType
	if !handler.BindJSON(c, &req) {
		return
	}
	if _, err := h.service.CreateMissionType(c.Request.Context(), &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) UpdateMissionType(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateMissionType
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateMissionType(c.Request.Context(), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) DeleteMissionType(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteMissionType(c.Request.Context(), id); err != nil {
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
	if err := h.service.AddSkill(c.Request.Context(), id, skillID); err != nil {
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
	if err := h.service.RemoveSkill(c.Request.Context(), id, skillID); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}
