package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/neo-studio/internal/config"
	httpcontroller "github.com/vadim/neo-studio/internal/controller/http"
	"github.com/vadim/neo-studio/internal/database"
	"github.com/vadim/neo-studio/internal/domain/content/dao"
	"github.com/vadim/neo-studio/internal/domain/content/policy"
	"github.com/vadim/neo-studio/internal/domain/content/seed"
	"github.com/vadim/neo-studio/internal/domain/content/service"
	"github.com/vadim/neo-studio/internal/httpx/response"
	"github.com/vadim/neo-studio/internal/metrics"
	"github.com/vadim/neo-studio/internal/storage"
)

// App is the main application container
type App struct {
	cfg        config.Config
	httpServer *http.Server
	router     *chi.Mux
	logger     *slog.Logger

	// Infrastructure, only set for the matching seed source
	pg *pgxpool.Pool
	s3 *storage.S3Storage

	store         *dao.Store
	seedCounts    seed.Counts
	contentPolicy *policy.Policy
}

// NewApp creates and initializes the application
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Timeout(30 * time.Second))

	app := &App{
		cfg:    cfg,
		router: r,
		logger: logger,
	}

	if err := app.initInfrastructure(ctx); err != nil {
		return nil, fmt.Errorf("initializing infrastructure: %w", err)
	}

	if err := app.initDomains(ctx); err != nil {
		app.closeInfrastructure()
		return nil, fmt.Errorf("initializing domains: %w", err)
	}

	app.registerRoutes()

	app.httpServer = &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      app.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// initInfrastructure opens the connection the configured seed source needs
func (a *App) initInfrastructure(ctx context.Context) error {
	switch a.cfg.Seed.Source {
	case config.SeedSourcePostgres:
		pool, err := database.NewPostgresPool(ctx, database.PoolConfig{
			DSN:          a.cfg.Database.PostgresDSN,
			MaxConns:     a.cfg.Database.MaxConns,
			MinConns:     a.cfg.Database.MinConns,
			ConnLifetime: a.cfg.Database.ConnLifetime,
		})
		if err != nil {
			return fmt.Errorf("connecting to postgres: %w", err)
		}
		a.pg = pool
	case config.SeedSourceS3:
		a.s3 = storage.NewS3Storage(storage.S3Config{
			Endpoint:        a.cfg.S3.Endpoint,
			AccessKeyID:     a.cfg.S3.AccessKeyID,
			SecretAccessKey: a.cfg.S3.SecretAccessKey,
			Bucket:          a.cfg.S3.Bucket,
			Region:          a.cfg.S3.Region,
		})
		if err := a.s3.Ping(ctx); err != nil {
			return fmt.Errorf("checking seed bucket: %w", err)
		}
	}
	return nil
}

// seedSource picks the seed source for the configured backend
func (a *App) seedSource() seed.Source {
	switch a.cfg.Seed.Source {
	case config.SeedSourceFile:
		return seed.NewFileSource(a.cfg.Seed.Path, time.Now)
	case config.SeedSourcePostgres:
		return seed.NewPostgresSource(a.pg)
	case config.SeedSourceS3:
		return seed.NewObjectSource(a.s3, a.cfg.Seed.S3Key, time.Now)
	default:
		return seed.NewEmbeddedSource(time.Now)
	}
}

// initDomains seeds the session store and builds the content layers
func (a *App) initDomains(ctx context.Context) error {
	src := a.seedSource()

	data, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading seed from %s: %w", src.Name(), err)
	}

	a.store = dao.NewStore()
	counts, err := seed.Apply(data, a.store)
	if err != nil {
		return fmt.Errorf("applying seed from %s: %w", src.Name(), err)
	}
	a.seedCounts = counts

	for collection, n := range counts {
		metrics.SeedEntities.WithLabelValues(string(collection)).Set(float64(n))
	}
	a.logger.Info("session store seeded",
		"source", src.Name(),
		"accounts", counts[dao.CollectionAccounts],
		"templates", counts[dao.CollectionTemplates],
		"insights", counts[dao.CollectionInsights],
		"posts", counts[dao.CollectionPosts],
	)

	svc := service.New(a.store,
		service.WithPipelineSpacing(a.cfg.Pipeline.Lead, a.cfg.Pipeline.Spacing),
	)
	a.contentPolicy = policy.New(a.store, svc, a.logger)

	return nil
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.router
}

// registerRoutes registers all HTTP routes
func (a *App) registerRoutes() {
	a.router.Get("/healthz", a.healthHandler)
	a.router.Get("/readyz", a.readyHandler)
	a.router.Handle("/metrics", metrics.Handler())

	swaggerHandler := httpcontroller.NewSwaggerHandler("Neo-Studio Content API", OpenAPISpec)
	swaggerHandler.RegisterRoutes(a.router)

	a.router.Route("/api/v1", func(r chi.Router) {
		contentHandler := httpcontroller.NewContentHandler(a.contentPolicy)
		contentHandler.RegisterRoutes(r)
	})
}

// healthHandler handles health check requests
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// readyHandler reports ready once the session store is seeded
func (a *App) readyHandler(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		response.ServiceUnavailable(w, "store not seeded")
		return
	}
	response.OK(w, map[string]any{
		"status": "ready",
		"seed":   a.cfg.Seed.Source,
		"counts": a.seedCounts,
	})
}

// Run starts the application and blocks until shutdown signal
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server", "addr", a.cfg.Server.Address())
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.closeInfrastructure()
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.logger.Info("received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		a.logger.Info("context cancelled")
	}

	return a.Shutdown(context.Background())
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}

	a.closeInfrastructure()

	a.logger.Info("shutdown complete")
	return nil
}

func (a *App) closeInfrastructure() {
	if a.pg != nil {
		a.pg.Close()
		a.pg = nil
	}
}
