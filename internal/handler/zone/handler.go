package zone

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/zone"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type Handler struct {
	service zone.ZoneServicer
}

func NewHandler(service zone.ZoneServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	zones := r.Group("/zones")
	{
		zones.GET("/:id", middleware.RequireRoles(auth.RoleManager, auth.RoleNurse), h.GetZone)

		managers := zones.Group("", middleware.RequireRoles(auth.RoleManager))
		managers.POST("", h.CreateZone)
		managers.PUT("/:id", h.UpdateZone)
		managers.DELETE("/:id", h.DeleteZone)
	}
}

func (h *Handler) GetZone(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	zone, err := h.service.GetZone(c.Request.Context(), middleware.CurrentClaims(c), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, zone)
}

func (h *Handler) CreateZone(c *gin.Context) {
	var req model.NewZone
	if !handler.BindJSON(c, &req) {
		return
	}
	if _, err := h.service.CreateZone(c.Request.Context(), middleware.CurrentClaims(c), &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) UpdateZone(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateZone
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateZone(c.Request.Context(), middleware.CurrentClaims(c), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) DeleteZone(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteZone(c.Request.Context(), middleware.CurrentClaims(c), id); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}
