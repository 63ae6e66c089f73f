package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/pkg/metrics"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// PublicHandler registers routes reachable without a session.
type PublicHandler interface {
	RegisterPublicRoutes(*gin.RouterGroup)
}

// MixedHandler owns both public and protected routes.
type MixedHandler interface {
	Handler
	PublicHandler
}

type Handlers struct {
	Version      PublicHandler
	Health       PublicHandler
	Metrics      gin.HandlerFunc
	Auth         MixedHandler
	Skills       Handler
	Centers      Handler
	Zones        Handler
	Managers     Handler
	Patients     Handler
	MissionTypes Handler
	Missions     Handler
	Visits       Handler
	Nurses       MixedHandler
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
}

type RouterConfig struct {
	RateLimit      rate.Limit
	RateBurst      int
	CORSConfig     middleware.CORSConfig
	RequestTimeout time.Duration
	SizeLimit      middleware.SizeLimitConfig
	Development    bool
	Metrics        *metrics.Metrics
}

func NewRouter(auth *middleware.AuthMiddleware, handlers Handlers, config RouterConfig) *Router {
	if config.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.RegisterValidation()

	engine := gin.New()

	r := &Router{
		engine:   engine,
		auth:     auth,
		handlers: handlers,
	}

	if config.RequestTimeout <= 0 {
		config.RequestTimeout = middleware.DefaultTimeoutConfig().Duration
	}
	if config.RateLimit <= 0 {
		config.RateLimit = rate.Inf
	}
	if config.SizeLimit.MaxBodySize <= 0 {
		config.SizeLimit = middleware.DefaultSizeLimitConfig()
	}

	// Logger sits outside ErrorHandler so it records the final status.
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(config.Development),
		middleware.Metrics(config.Metrics),
		middleware.Timeout(middleware.TimeoutConfig{Duration: config.RequestTimeout}),
		middleware.SecurityHeaders(middleware.SecurityConfig{Development: config.Development}),
		middleware.SizeLimit(config.SizeLimit),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	if r.handlers.Metrics != nil {
		r.engine.GET("/metrics", r.handlers.Metrics)
	}

	api := r.engine.Group("/api/v1")

	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.setupProtectedRoutes(protected)
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.handlers.Version.RegisterPublicRoutes(rg)
	r.handlers.Health.RegisterPublicRoutes(rg)
	r.handlers.Auth.RegisterPublicRoutes(rg)
	r.handlers.Nurses.RegisterPublicRoutes(rg)
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	for _, h := range []Handler{
		r.handlers.Auth,
		r.handlers.Skills,
		r.handlers.Centers,
		r.handlers.Zones,
		r.handlers.Managers,
		r.handlers.Patients,
		r.handlers.MissionTypes,
		r.handlers.Missions,
		r.handlers.Visits,
		r.handlers.Nurses,
	} {
		h.RegisterRoutes(rg)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
