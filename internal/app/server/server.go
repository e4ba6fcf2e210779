package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"talentops/internal/domain/attendance"
	"talentops/internal/domain/entity"
	"talentops/internal/domain/insights"
	"talentops/internal/domain/seed"
	"talentops/internal/platform/config"
	"talentops/internal/platform/logger"
	"talentops/internal/platform/metrics"
	"talentops/internal/platform/store"
	atshandler "talentops/internal/transport/http/handlers/ats"
	attendancehandler "talentops/internal/transport/http/handlers/attendance"
	entityhandler "talentops/internal/transport/http/handlers/entity"
	insightshandler "talentops/internal/transport/http/handlers/insights"
	messaginghandler "talentops/internal/transport/http/handlers/messaging"
	seedhandler "talentops/internal/transport/http/handlers/seed"
	systemhandler "talentops/internal/transport/http/handlers/system"
	"talentops/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	Store  *store.Store // nil when the database is not configured
	Router http.Handler

	log zerolog.Logger
}

// New builds the fully wired application. The document store is optional:
// when DATABASE_URL/DATABASE_NAME are missing or the database is
// unreachable the app still comes up and persistence operations report
// store_unavailable.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(cfg.ServiceName)

	var st *store.Store
	if cfg.DatabaseConfigured() {
		connected, err := store.Connect(ctx, cfg)
		if err != nil {
			log.Warn().Err(err).Msg("database unreachable, continuing without persistence")
		} else {
			st = connected
			if err := st.EnsureIndexes(ctx); err != nil {
				log.Warn().Err(err).Msg("ensure indexes failed")
			}
		}
	} else {
		log.Warn().Msg("database not configured, continuing without persistence")
	}

	// A nil *store.Store must stay a nil interface inside the services.
	var entityStore entity.Store
	var attendanceStore attendance.Store
	var insightsStore insights.Store
	var seedStore seed.Store
	if st != nil {
		entityStore = st
		attendanceStore = st
		insightsStore = st
		seedStore = st
	}

	entitySvc := entity.NewService(entityStore)
	attendanceSvc := attendance.NewService(attendanceStore)
	insightsSvc := insights.NewService(insightsStore)
	seedSvc := seed.NewService(seedStore, log)

	if cfg.RunSeed {
		seedSvc.AutoSeedIfEmpty(ctx)
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(log, collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	systemhandler.NewHandler(cfg, st, collector).RegisterRoutes(router)

	entityHandler := entityhandler.NewHandler(entitySvc)
	router.Route("/api", func(r chi.Router) {
		insightshandler.NewHandler(insightsSvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc, entityHandler).RegisterRoutes(r)
		atshandler.NewHandler().RegisterRoutes(r)
		messaginghandler.NewHandler(entityHandler).RegisterRoutes(r)
		seedhandler.NewHandler(seedSvc).RegisterRoutes(r)

		// Generic dispatch last; static routes above shadow it.
		entityHandler.RegisterRoutes(r)
	})

	return &App{Config: cfg, Store: st, Router: router, log: log}, nil
}

func (a *App) Close(ctx context.Context) {
	if a.Store == nil {
		return
	}
	if err := a.Store.Close(ctx); err != nil {
		a.log.Warn().Err(err).Msg("store close failed")
	}
}

// Run loads configuration, builds the app and serves until the listener
// fails.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	app.log.Info().Str("addr", cfg.Addr).Msg("server listening")
	return http.ListenAndServe(cfg.Addr, app.Router)
}
