package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/core/screens"
	"github.com/SscSPs/resale_backoffice/internal/core/services"
	"github.com/SscSPs/resale_backoffice/internal/handlers"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/SscSPs/resale_backoffice/internal/platform/config"
	"github.com/SscSPs/resale_backoffice/internal/repositories/database/pgsql"
	"github.com/SscSPs/resale_backoffice/internal/repositories/restapi"
	"github.com/SscSPs/resale_backoffice/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Resale Back-Office Console API
// @version 1.0
// @description Back-office console for the resale backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the backend's token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client, err := restapi.NewClient(cfg.UpstreamAPIURL, cfg.UpstreamTimeout)
	if err != nil {
		logger.Error("Failed to create upstream client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	repos := restapi.NewRepositoryProvider(client)

	if cfg.JournalEnabled() {
		dbPool, err := openJournal(cfg, logger)
		switch {
		case err == nil:
			defer database.ClosePgxPool(dbPool, logger)
			repos.ConsoleActionRepo = pgsql.NewConsoleActionRepository(dbPool)
		case cfg.EnableDBCheck:
			logger.Error("Failed to open console action journal", slog.String("error", err.Error()))
			os.Exit(1)
		default:
			logger.Warn("Console action journal unavailable, continuing without it", slog.String("error", err.Error()))
		}
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	workspaces, err := screens.NewWorkspaces(cfg.MaxWorkspaces)
	if err != nil {
		logger.Error("Failed to create workspaces", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.MetricsMiddleware())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, workspaces, middleware.RateLimit(limiter)); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("upstream", cfg.UpstreamAPIURL), slog.Bool("journal", cfg.JournalEnabled()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-sigCtx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// openJournal migrates the journal database and opens its pool.
func openJournal(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return nil, err
	}
	return database.NewPgxPool(context.Background(), cfg.DatabaseURL, database.PoolOptions{
		ConnectTimeout: cfg.DBConnectTimeout,
		MaxConns:       cfg.DBMaxConns,
	}, logger)
}

// corsConfig allows the admin front end to call the console with a bearer token.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.IsProduction {
		corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AddAllowHeaders("Authorization")
	corsCfg.AddExposeHeaders("Content-Disposition")
	return corsCfg
}
