package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
	"github.com/pennywise-app/pennywise_backend/internal/handlers"
	"github.com/pennywise-app/pennywise_backend/internal/mail"
	"github.com/pennywise-app/pennywise_backend/internal/middleware"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
	"github.com/pennywise-app/pennywise_backend/internal/platform/database"
	"github.com/pennywise-app/pennywise_backend/internal/queue"
	"github.com/pennywise-app/pennywise_backend/internal/repositories/database/pgsql"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Pennywise Backend API
// @version 1.0
// @description Personal finance management API.

// @host localhost:8080
// @BasePath /api/v1

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

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Queue client doubles as the report job publisher.
	queueClient, err := queue.NewClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer queueClient.Close()
	logger.Info("Message broker connection established.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	mailer := mail.NewSMTPMailer(cfg)
	serviceContainer := services.NewServiceContainer(cfg, repos, queueClient, mailerOrNil(mailer))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, repos.AccessTokenRepo)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// mailerOrNil keeps the typed-nil pointer from masquerading as a non-nil
// interface inside the service container.
func mailerOrNil(m *mail.SMTPMailer) portssvc.Mailer {
	if m == nil {
		return nil
	}
	return m
}

func runMigrations(logger *slog.Logger, databaseURL string) error {
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
