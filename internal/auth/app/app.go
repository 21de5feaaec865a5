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

	"github.com/redis/go-redis/v9"

	httpapi "github.com/cursoteca/cursoteca/internal/auth/http"
	"github.com/cursoteca/cursoteca/internal/auth/service"
	"github.com/cursoteca/cursoteca/internal/auth/store"
	"github.com/cursoteca/cursoteca/internal/auth/store/drivers/sqlite"
	"github.com/cursoteca/cursoteca/pkg/captcha"
	"github.com/cursoteca/cursoteca/pkg/cryptox"
	"github.com/cursoteca/cursoteca/pkg/jwtx"
	"github.com/cursoteca/cursoteca/pkg/ratelimit"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the auth service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	codec   *jwtx.Codec
	limits  ratelimit.Store
	captcha captcha.Verifier

	// Services
	authService         *service.AuthService
	userService         *service.UserService
	suggestionService   *service.SuggestionService
	reportService       *service.ReportService
	housekeepingService *service.HousekeepingService // Only with the in-memory limiter

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "cursoteca-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initRateLimits(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.codec = jwtx.NewCodec(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.Issuer)
	if cfg.AccessTokenTTL > 0 {
		app.codec.AccessTTL = cfg.AccessTokenTTL
	}
	if cfg.RefreshTokenTTL > 0 {
		app.codec.RefreshTTL = cfg.RefreshTokenTTL
	}
	app.initCaptcha()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("auth service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("auth service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
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

// initRateLimits selects the rate-limit counter store. With a Redis
// address configured the counters are shared across replicas; otherwise
// a per-process in-memory store is used and swept by housekeeping.
func (app *Application) initRateLimits() error {
	if app.cfg.RedisAddr == "" {
		app.limits = ratelimit.NewMemoryStore()
		app.logger.Info("rate limiting with in-memory counters")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
		DB:       app.cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", app.cfg.RedisAddr, err)
	}

	app.limits = ratelimit.NewRedisStore(client, "ratelimit")
	app.logger.Info("rate limiting with redis counters", "addr", app.cfg.RedisAddr)
	return nil
}

// initCaptcha picks the captcha verifier. The static always-pass
// verifier is only for local development; production uses siteverify
// and fails closed when the secret is missing.
func (app *Application) initCaptcha() {
	if app.cfg.CaptchaDisabled {
		app.captcha = captcha.Static{Verdict: true}
		app.logger.Warn("captcha verification disabled")
		return
	}

	if app.cfg.RecaptchaSecret == "" {
		app.logger.Warn("RECAPTCHA_SECRET_KEY not set, captcha-gated operations will reject")
	}
	app.captcha = captcha.NewRecaptcha(app.cfg.RecaptchaSecret)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:   app.db,
		Codec:   app.codec,
		Captcha: app.captcha,
	}

	app.userService = &service.UserService{Store: app.db}
	app.suggestionService = &service.SuggestionService{
		Store:   app.db,
		Captcha: app.captcha,
	}
	app.reportService = &service.ReportService{
		Store:   app.db,
		Captcha: app.captcha,
	}

	// Redis expires its own counters; only the in-memory store needs sweeping.
	if sweeper, ok := app.limits.(ratelimit.Sweeper); ok {
		app.housekeepingService = service.NewHousekeepingService(
			sweeper,
			app.logger,
			app.cfg.HousekeepingInterval,
		)
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		app.limits,
		BuildVersion,
		app.cfg.SecureCookies,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.SuggestionService = app.suggestionService
	router.ReportService = app.reportService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
