package center

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/service/center"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type Handler struct {
	service center.CenterServicer
}

func NewHandler(service center.CenterServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	centers := r.Group("/centers", middleware.RequireRoles(auth.RoleManager))
	{
		centers.GET("", h.ListCenters)
		centers.GET("/:id", h.GetCenter)
		centers.GET("/:id/zones", h.ListZones)
	}
}

func (h *Handler) ListCenters(c *gin.Context) {
	q, ok := handler.ListParams(c)
	if !ok {
		return
	}
	centers, total, err := h.service.ListCenters(c.Request.Context(), q)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, centers, q.Pagination, total)
}

func (h *Handler) GetCenter(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	center, err := h.service.GetCenter(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, center)
}

func (h *Handler) ListZones(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	p, ok := handler.PaginationParams(c)
	if !ok {
		return
	}
	zones, total, err := h.service.ListZones(c.Request.Context(), id, p)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, zones, p, total)
}
