package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aussiebroadwan/roleadmin/internal/admin/domain"
	httpapi "github.com/aussiebroadwan/roleadmin/internal/admin/http"
	"github.com/aussiebroadwan/roleadmin/internal/admin/identity"
	"github.com/aussiebroadwan/roleadmin/internal/admin/locale"
	"github.com/aussiebroadwan/roleadmin/internal/admin/service"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/roleadmin/pkg/cryptox"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"
)

const (
	// BuildVersion is overridden at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the admin service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	keys *verificationKeys

	identity    *identity.Manager
	assignments *service.AssignmentService
	resources   *service.ResourceService
	seed        *service.SeedService

	server *http.Server
	router *httpapi.Router

	releaseOnce sync.Once
	releaseErr  error
}

// New creates an Application with every dependency initialized, the schema
// migrated and seed data applied.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "admin-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}
	ctx := slogx.WithContext(context.Background(), app.logger)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	keys, err := initVerificationKeys(ctx, cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keys = keys

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.seed.Seed(ctx, domain.SeedData{
		Resources:      cfg.Resources,
		ProtectedRoles: cfg.ProtectedRoles,
	}); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.keys.start()

	app.logger.Info("admin service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		_ = app.release()
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down admin service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.release(); err != nil {
		return err
	}

	app.logger.Info("admin service stopped")
	return nil
}

// release stops the JWKS refresher and closes the database. Only the first
// call does any work.
func (app *Application) release() error {
	app.releaseOnce.Do(func() {
		app.keys.stop()
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			app.releaseErr = err
		}
	})
	return app.releaseErr
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
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

func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	opts := identity.DefaultOptions()
	opts.Password.RequiredLength = app.cfg.PasswordMinLength
	opts.Password.RequireNonAlphanumeric = app.cfg.PasswordNonAlnum
	opts.Locale = locale.Match(app.cfg.Locale)

	app.identity = identity.NewManager(app.db, cryptox.NewArgon2Hasher(pepper), opts)
	app.assignments = &service.AssignmentService{Store: app.db, Identity: app.identity}
	app.resources = &service.ResourceService{Store: app.db}
	app.seed = &service.SeedService{Store: app.db, Identity: app.identity}

	app.logger.Info("services initialized", "locale", opts.Locale.String())
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.keys,
		app.keys.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Assignments = app.assignments
	router.Resources = app.resources
	router.ReadLimit = app.cfg.readLimit()
	router.WriteLimit = app.cfg.writeLimit()
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
