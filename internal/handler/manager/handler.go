package manager

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/manager"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
)

type Handler struct {
	service manager.ManagerServicer
}

func NewHandler(service manager.ManagerServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	managers := r.Group("/managers", middleware.RequireRoles(auth.RoleManager))
	{
		managers.GET("", h.ListManagers)
		managers.GET("/me", h.GetMe)
		managers.GET("/:id", h.GetManager)
		managers.POST("", h.CreateManager)
		managers.PUT("/:id", h.UpdateManager)
		managers.DELETE("/:id", h.DeleteManager)
	}
}

func (h *Handler) ListManagers(c *gin.Context) {
	q, ok := handler.ListParams(c)
	if !ok {
		return
	}
	managers, total, err := h.service.ListManagers(c.Request.Context(), q)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithPagination(c, managers, q.Pagination, total)
}

func (h *Handler) GetMe(c *gin.Context) {
	h.respondManager(c, middleware.CurrentClaims(c).SubjectID)
}

func (h *Handler) GetManager(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	h.respondManager(c, id)
}

func (h *Handler) respondManager(c *gin.Context, id int64) {
	manager, err := h.service.GetManager(c.Request.Context(), id)
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, manager)
}

func (h *Handler) CreateManager(c *gin.Context) {
	var req model.NewManager
	if !handler.BindJSON(c, &req) {
		return
	}
	if _, err := h.service.CreateManager(c.Request.Context(), &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) UpdateManager(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	var req model.UpdateUser
	if !handler.BindJSON(c, &req) {
		return
	}
	if err := h.service.UpdateManager(c.Request.Context(), middleware.CurrentClaims(c), id, &req); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}

func (h *Handler) DeleteManager(c *gin.Context) {
	id, ok := handler.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteManager(c.Request.Context(), middleware.CurrentClaims(c), id); err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, nil)
}
