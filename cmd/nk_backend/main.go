package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/newskeeper/newskeeper_backend/internal/adapters/database/pgsql"
	"github.com/newskeeper/newskeeper_backend/internal/adapters/newsapi"
	"github.com/newskeeper/newskeeper_backend/internal/adapters/oauthprovider"
	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
	portsrepo "github.com/newskeeper/newskeeper_backend/internal/core/ports/repositories"
	portssvc "github.com/newskeeper/newskeeper_backend/internal/core/ports/services"
	"github.com/newskeeper/newskeeper_backend/internal/core/services"
	"github.com/newskeeper/newskeeper_backend/internal/handlers"
	"github.com/newskeeper/newskeeper_backend/internal/middleware"
	"github.com/newskeeper/newskeeper_backend/internal/platform/config"
	"github.com/newskeeper/newskeeper_backend/pkg/database"
)

const shutdownGrace = 10 * time.Second

// @title NewsKeeper Backend API
// @version 1.0
// @description REST backend for authenticated news search with per-user article history.

// @host localhost:5000
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true, // the session cookie crosses origins
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		User:    pgsql.NewUserRepository(dbPool),
		Article: pgsql.NewArticleRepository(dbPool),
	}
	newsClient := newsapi.NewClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey)
	providers := map[domain.AuthProvider]portssvc.OAuthProviderSvcFacade{
		domain.ProviderGoogle:   oauthprovider.NewGoogleProvider(cfg.Google),
		domain.ProviderFacebook: oauthprovider.NewFacebookProvider(cfg.Facebook),
		domain.ProviderGitHub:   oauthprovider.NewGitHubProvider(cfg.GitHub),
	}
	container := services.NewServiceContainer(cfg, repos, newsClient, providers)

	handlers.RegisterRoutes(r, cfg, container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// runMigrations applies the bundled schema files. This is schema bootstrap at
// startup, using a temporary database/sql connection compatible with the pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
