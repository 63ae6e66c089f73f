package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/homecare-api/internal/config"
	"github.com/jwalitptl/homecare-api/internal/handler"
	authHandler "github.com/jwalitptl/homecare-api/internal/handler/auth"
	centerHandler "github.com/jwalitptl/homecare-api/internal/handler/center"
	"github.com/jwalitptl/homecare-api/internal/handler/health"
	managerHandler "github.com/jwalitptl/homecare-api/internal/handler/manager"
	missionHandler "github.com/jwalitptl/homecare-api/internal/handler/mission"
	missionTypeHandler "github.com/jwalitptl/homecare-api/internal/handler/missiontype"
	nurseHandler "github.com/jwalitptl/homecare-api/internal/handler/nurse"
	patientHandler "github.com/jwalitptl/homecare-api/internal/handler/patient"
	promHandler "github.com/jwalitptl/homecare-api/internal/handler/prometheus"
	skillHandler "github.com/jwalitptl/homecare-api/internal/handler/skill"
	visitHandler "github.com/jwalitptl/homecare-api/internal/handler/visit"
	zoneHandler "github.com/jwalitptl/homecare-api/internal/handler/zone"
	"github.com/jwalitptl/homecare-api/internal/middleware"
	"github.com/jwalitptl/homecare-api/internal/repository/postgres"
	"github.com/jwalitptl/homecare-api/internal/router"
	authService "github.com/jwalitptl/homecare-api/internal/service/auth"
	calendarService "github.com/jwalitptl/homecare-api/internal/service/calendar"
	centerService "github.com/jwalitptl/homecare-api/internal/service/center"
	managerService "github.com/jwalitptl/homecare-api/internal/service/manager"
	missionService "github.com/jwalitptl/homecare-api/internal/service/mission"
	missionTypeService "github.com/jwalitptl/homecare-api/internal/service/missiontype"
	nurseService "github.com/jwalitptl/homecare-api/internal/service/nurse"
	patientService "github.com/jwalitptl/homecare-api/internal/service/patient"
	skillService "github.com/jwalitptl/homecare-api/internal/service/skill"
	userService "github.com/jwalitptl/homecare-api/internal/service/user"
	visitService "github.com/jwalitptl/homecare-api/internal/service/visit"
	zoneService "github.com/jwalitptl/homecare-api/internal/service/zone"
	"github.com/jwalitptl/homecare-api/pkg/auth"
	"github.com/jwalitptl/homecare-api/pkg/cache"
	"github.com/jwalitptl/homecare-api/pkg/logger"
	"github.com/jwalitptl/homecare-api/pkg/metrics"
	"github.com/jwalitptl/homecare-api/pkg/security"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:   cfg.Log.Level,
		Console: !cfg.IsProduction(),
	})

	ctx := context.Background()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(cfg.Metrics.Namespace, registry)

	// Initialize database
	db, err := postgres.NewDB(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	calendarCache := newCache(ctx, cfg.Cache, m)

	codec, err := auth.NewCodec(cfg.Token.Secret, cfg.Token.Validity)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token codec")
	}
	carrier := auth.NewCarrier(codec)

	// Initialize repositories
	repos := postgres.NewRepositories(db, m)

	// Initialize services
	userSvc := userService.NewService(repos.Users, security.NewBcryptHasher(0))
	authSvc := authService.NewService(repos.Users, codec)
	skillSvc := skillService.NewService(repos.Skills)
	centerSvc := centerService.NewService(repos.Centers)
	zoneSvc := zoneService.NewService(repos.Zones)
	missionTypeSvc := missionTypeService.NewService(repos.MissionTypes)
	missionSvc := missionService.NewService(repos.Missions)
	visitSvc := visitService.NewService(repos.Visits)
	nurseSvc := nurseService.NewService(repos.Tx, repos.Nurses, repos.Addresses, userSvc)
	managerSvc := managerService.NewService(repos.Tx, repos.Managers, userSvc)
	patientSvc := patientService.NewService(repos.Tx, repos.Patients, repos.Addresses, userSvc)
	calendarSvc := calendarService.NewService(repos.Users, repos.Visits, calendarCache, cfg.Cache.TTL)

	// Setup router
	r := router.NewRouter(
		middleware.NewAuthMiddleware(carrier),
		router.Handlers{
			Version:      handler.NewHandler(version),
			Health:       health.NewHandler(db),
			Metrics:      promHandler.New(registry).Handler(),
			Auth:         authHandler.NewHandler(authSvc, carrier),
			Skills:       skillHandler.NewHandler(skillSvc),
			Centers:      centerHandler.NewHandler(centerSvc),
			Zones:        zoneHandler.NewHandler(zoneSvc),
			Managers:     managerHandler.NewHandler(managerSvc),
			Patients:     patientHandler.NewHandler(patientSvc),
			MissionTypes: missionTypeHandler.NewHandler(missionTypeSvc),
			Missions:     missionHandler.NewHandler(missionSvc),
			Visits:       visitHandler.NewHandler(visitSvc),
			Nurses:       nurseHandler.NewHandler(nurseSvc, calendarSvc),
		},
		router.RouterConfig{
			RateLimit:      rate.Limit(cfg.RateLimit.RPS),
			RateBurst:      cfg.RateLimit.Burst,
			CORSConfig:     corsConfig(cfg.CORS),
			RequestTimeout: cfg.Server.RequestTimeout,
			Development:    !cfg.IsProduction(),
			Metrics:        m,
		},
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

// newCache prefers Redis when configured and falls back to the in-process
// cache when it is not reachable at startup.
func newCache(ctx context.Context, cfg config.CacheConfig, m *metrics.Metrics) cache.Cache {
	if cfg.RedisURL != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		c, err := cache.NewRedis(pingCtx, cache.RedisConfig{
			URL:        cfg.RedisURL,
			Prefix:     cfg.Prefix,
			MaxRetries: 1,
		}, m)
		if err == nil {
			log.Info().Msg("using redis cache")
			return c
		}
		log.Warn().Err(err).Msg("redis unavailable, using in-memory cache")
	}
	return cache.NewMemory(cfg.TTL, 2*cfg.TTL, m)
}

func corsConfig(cfg config.CORSConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.AllowedOrigins) > 0 {
		cors.AllowOrigins = cfg.AllowedOrigins
	}
	cors.MaxAge = int(cfg.MaxAge.Seconds())
	return cors
}
