package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/dika1005/rodstore-backend/internal/core/services"
	"github.com/dika1005/rodstore-backend/internal/gateway/midtrans"
	"github.com/dika1005/rodstore-backend/internal/handlers"
	"github.com/dika1005/rodstore-backend/internal/middleware"
	"github.com/dika1005/rodstore-backend/internal/platform/cache"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/dika1005/rodstore-backend/internal/platform/events"
	"github.com/dika1005/rodstore-backend/internal/platform/oauthstate"
	"github.com/dika1005/rodstore-backend/internal/repositories/database/pgsql"
	"github.com/dika1005/rodstore-backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Rodstore Backend API
// @version 1.0
// @description E-commerce backend for a fishing rod retailer.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
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
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// External dependencies.
	gateway := midtrans.NewClient(cfg.MidtransBaseURL, cfg.MidtransServerKey)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		publisher = events.NewAMQPPublisher(cfg.AMQPURL)
	} else {
		logger.Warn("AMQP_URL not set, order events disabled")
	}

	redisClient := cache.NewRedisClient(cfg.RedisURL)
	stateStore := oauthstate.New(redisClient, 10*time.Minute)

	// Wire repositories, services and routes.
	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, gateway, publisher, stateStore)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending migrations from the migrations directory.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
