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

	httpapi "github.com/aussiebroadwan/teamdesk/internal/admin/http"
	"github.com/aussiebroadwan/teamdesk/internal/admin/service"
	"github.com/aussiebroadwan/teamdesk/internal/admin/store"
	"github.com/aussiebroadwan/teamdesk/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/teamdesk/internal/admin/team"
	"github.com/aussiebroadwan/teamdesk/pkg/httpx"
	"github.com/aussiebroadwan/teamdesk/pkg/otelx"
	"github.com/aussiebroadwan/teamdesk/pkg/slogx"
	"github.com/aussiebroadwan/teamdesk/pkg/teamsdk"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	serviceName = "teamdesk-admin"
)

// Application wires the team admin service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	remote        *teamsdk.Client
	registry      *team.Registry
	traceShutdown otelx.ShutdownFunc

	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	shutdown, err := otelx.Setup(context.Background(), otelx.Config{
		ServiceName:    serviceName,
		ServiceVersion: BuildVersion,
		Endpoint:       cfg.OTelEndpoint,
		Enabled:        cfg.OTelEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.traceShutdown = shutdown

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.remote = teamsdk.NewClient(cfg.APIURL, cfg.APIToken, teamsdk.WithTimeout(cfg.APITimeout))

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("team admin starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"api_url", app.cfg.APIURL,
		"auth", app.cfg.AuthEnabled(),
	)
	if !app.cfg.AuthEnabled() {
		app.logger.Warn("operator authentication disabled; set TEAMDESK_SESSION_SECRET to enable it")
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains requests, stops the views and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down team admin...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	// Views may still be recording activity; stop them before the store goes.
	app.registry.Close()

	if err := app.traceShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("team admin stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
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

func (app *Application) initServices() {
	app.registry = team.NewRegistry(team.Options{
		Remote:   team.SDKRemote{Client: app.remote},
		Activity: app.db.Activity(),
		Logger:   app.logger,
		Limit:    app.cfg.PageSize,
	})

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.registry,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.ActivityRetention,
		app.cfg.ViewIdleTTL,
	)
}

func (app *Application) initHTTP() {
	var verifier *httpx.TokenVerifier
	if app.cfg.AuthEnabled() {
		verifier = &httpx.TokenVerifier{
			Secret: []byte(app.cfg.SessionSecret),
			Issuer: app.cfg.SessionIssuer,
		}
	}

	router := httpapi.NewRouter(
		app.registry,
		app.db,
		app.remote,
		verifier,
		BuildVersion,
		app.cfg.RenderTimeout,
		app.logger,
	)
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Handler exposes the routed handler, for tests that serve it in-process.
func (app *Application) Handler() http.Handler { return app.router }
