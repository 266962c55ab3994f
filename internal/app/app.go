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

	httpapi "github.com/opentransit/stationhub/internal/http"
	"github.com/opentransit/stationhub/internal/service"
	"github.com/opentransit/stationhub/internal/storage"
	"github.com/opentransit/stationhub/internal/store"
	"github.com/opentransit/stationhub/internal/store/drivers/sqlite"
	"github.com/opentransit/stationhub/pkg/cryptox"
	"github.com/opentransit/stationhub/pkg/jwtx"
	"github.com/opentransit/stationhub/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the stationhub service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	tokens *jwtx.HS256
	media  storage.ObjectStorage

	authService     *service.AuthService
	stationService  *service.StationService
	categoryService *service.CategoryService
	regionService   *service.RegionService
	mediaService    *service.MediaService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "stationhub",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.PasswordSecret == "" {
		return nil, errors.New("PASSWORD_SECRET is required")
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initStorage(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *Application) Run() error {
	app.logger.Info("stationhub starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown drains in-flight requests and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down stationhub...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("stationhub stopped")
	return nil
}

func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
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

func (app *Application) initStorage() error {
	media, err := storage.NewMinioStorage(storage.MinioConfig{
		Endpoint:  app.cfg.MinioEndpoint,
		AccessKey: app.cfg.MinioAccessKey,
		SecretKey: app.cfg.MinioSecretKey,
		Bucket:    app.cfg.MinioBucket,
		UseSSL:    app.cfg.MinioUseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize media storage: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := media.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure media bucket: %w", err)
	}

	app.media = media
	return nil
}

func (app *Application) initServices() {
	app.tokens = jwtx.NewHS256(app.cfg.JWTSecret, app.cfg.TokenTTL)

	app.authService = &service.AuthService{
		Store:   app.db,
		Encoder: cryptox.NewPasswordEncoder(app.cfg.PasswordSecret),
		Tokens:  app.tokens,
	}
	app.stationService = &service.StationService{Store: app.db}
	app.categoryService = &service.CategoryService{Store: app.db}
	app.regionService = service.NewRegionService(app.cfg.RegionsBaseURL)
	app.mediaService = &service.MediaService{Storage: app.media}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.tokens, BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.StationService = app.stationService
	router.CategoryService = app.categoryService
	router.RegionService = app.regionService
	router.MediaService = app.mediaService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
