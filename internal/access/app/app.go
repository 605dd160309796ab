package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/opsdeskhq/opsdesk-access/internal/access/http"
	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store/drivers/sqlite"
	"github.com/opsdeskhq/opsdesk-access/pkg/jwtx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the access service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	verifier jwtx.Verifier

	resolverService     *service.ResolverService
	guardService        *service.GuardService
	upgradeService      *service.UpgradeService
	onboardingService   *service.OnboardingService
	assignmentsService  *service.AssignmentsService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "access-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
		}),
	}

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is required (ACCESS_SESSION__SECRET)")
	}
	app.verifier = jwtx.NewHS256([]byte(cfg.Session.Secret))

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("access service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down access service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("access service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.Database.File)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.resolverService = &service.ResolverService{
		Store: app.db,
		Config: service.ResolverConfig{
			MaxAttempts: app.cfg.Resolver.MaxAttempts,
			RetryDelay:  app.cfg.Resolver.RetryDelay,
		},
	}
	app.guardService = &service.GuardService{Store: app.db}
	app.upgradeService = &service.UpgradeService{Store: app.db}
	app.onboardingService = &service.OnboardingService{Store: app.db}
	app.assignmentsService = &service.AssignmentsService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.Housekeeping.Interval,
		app.cfg.Housekeeping.Retention,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cfg.Session.Issuer,
		app.cfg.Onboard.KeyHash,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.ResolverService = app.resolverService
	router.GuardService = app.guardService
	router.UpgradeService = app.upgradeService
	router.OnboardingService = app.onboardingService
	router.AssignmentsService = app.assignmentsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
