package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/claimstack/expense_claims_app/internal/adapters/database/pgsql"
	"github.com/claimstack/expense_claims_app/internal/core/services"
	"github.com/claimstack/expense_claims_app/internal/fallback"
	"github.com/claimstack/expense_claims_app/internal/handlers"
	"github.com/claimstack/expense_claims_app/internal/middleware"
	"github.com/claimstack/expense_claims_app/pkg/config"
	"github.com/claimstack/expense_claims_app/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	// Migrations are best-effort at startup: an unreachable store must not
	// keep the read path (fallback snapshot) from coming up.
	runMigrations(cfg, logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLogging(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gateway := pgsql.NewGateway(dbPool, logger, fallback.New(time.Now()))
	setupAPIV1Routes(r, gateway)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(cfg *config.Config, logger *slog.Logger) {
	m, err := migrate.New(cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("Skipping migrations", slog.String("error", err.Error()))
		return
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		logger.Warn("Failed to apply migrations; continuing in degraded mode", slog.String("error", err.Error()))
		return
	}
	logger.Info("Database migrations up to date")
}

func setupAPIV1Routes(r *gin.Engine, gateway *pgsql.Gateway) {
	v1 := r.Group("/api/v1")

	v1.GET("/health", handlers.GetHome)

	handlers.RegisterRoleRoutes(v1, services.NewRoleService(pgsql.NewRoleRepository(gateway)))
	handlers.RegisterUserRoutes(v1, services.NewUserService(pgsql.NewUserRepository(gateway)))
	handlers.RegisterCategoryRoutes(v1, services.NewCategoryService(pgsql.NewCategoryRepository(gateway)))
	handlers.RegisterExpenseRoutes(v1, services.NewExpenseService(pgsql.NewExpenseRepository(gateway)))
	handlers.RegisterDiagnosticsRoutes(v1, gateway)
}
