package auth

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/homecare-api/internal/handler"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/model"
	"github.com/jwalitptl/homecare-api/internal/service/auth"
	"github.com/jwalitptl/homecare-api/pkg/httputil"
	pkgauth "github.com/jwalitptl/homecare-api/pkg/auth"
)

type Handler struct {
	svc     auth.AuthServicer
	carrier *pkgauth.Carrier
}

func NewHandler(svc auth.AuthServicer, carrier *pkgauth.Carrier) *Handler {
	return &Handler{svc: svc, carrier: carrier}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("/info", h.Info)
		auth.GET("/logout", h.Logout)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginUser
	if !handler.BindJSON(c, &req) {
		return
	}

	user, claims, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		handler.Fail(c, err)
		return
	}

	cookie, err := h.carrier.Attach(claims)
	if err != nil {
		handler.Fail(c, fmt.Errorf("failed to issue token: %w", err))
		return
	}
	http.SetCookie(c.Writer, cookie)

	httputil.RespondWithSuccess(c, user)
}

func (h *Handler) Info(c *gin.Context) {
	user, err := h.svc.Info(c.Request.Context(), middleware.CurrentClaims(c))
	if err != nil {
		handler.Fail(c, err)
		return
	}
	httputil.RespondWithSuccess(c, user)
}

func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, h.carrier.Clear())
	httputil.RespondWithSuccess(c, nil)
}
