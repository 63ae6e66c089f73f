package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the build version.
type Handler struct {
	version string
}

// NewHandler creates a new handler instance
func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("", h.Version)
	r.GET("/version", h.Version)
}

func (h *Handler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, h.version)
}
