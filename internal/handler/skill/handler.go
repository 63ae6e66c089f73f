package skill

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/skill"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type Handler struct {
	service skill.SkillServicer
}

func NewHandler(service skill.SkillServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")
	{
		skills.GET("", middleware.RequireRoles(auth.RoleManager, auth.RoleNurse), h.ListSkills)

		managers := skills.Group("", middleware.RequireRoles(auth.RoleManager))
		managers.GET("/:id", h.GetSkill)
		managers.POST("", h.CreateSkill)
		managers.PUT("/:id", h.UpdateSkill)
		managers.DELETE("/:id", h.DeleteSkill)
	}
}

func (h *Handler) ListSkills(c *gin.Context) {
	q, ok := handler.ListParams(c)
	if !ok {
		return
	}
	skills, total, err := h.service.ListSkills(c.Request.Context(), q)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, skills, q.Pagination, total)
}

func (h *Handler) GetSkill(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	skill, err := h.service.GetSkill(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, skill)
}

func (h *Handler) CreateSkill(c *gin.Context) {
	var req model.NewSkill
	if !handler.BindJSON(c, &req) {
		return
	}
	if _, err := h.service.CreateSkill(c.Request.Context(), &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateSkill
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateSkill(c.Request.Context(), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSkill(c.Request.Context(), id); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}
