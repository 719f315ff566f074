package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pennywise-app/pennywise_backend/internal/core/services"
	"github.com/pennywise-app/pennywise_backend/internal/mail"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
	"github.com/pennywise-app/pennywise_backend/internal/platform/database"
	"github.com/pennywise-app/pennywise_backend/internal/queue"
	"github.com/pennywise-app/pennywise_backend/internal/repositories/database/pgsql"
	"github.com/pennywise-app/pennywise_backend/internal/storage"
	"github.com/pennywise-app/pennywise_backend/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	queueClient, err := queue.NewClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer queueClient.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	mailer := mail.NewSMTPMailer(cfg)

	// The worker never publishes jobs itself, so the container gets no
	// publisher; notification delivery still needs the mailer.
	var notifier = services.NewNotificationService(repos.NotificationRepo, nil)
	if mailer != nil {
		notifier = services.NewNotificationService(repos.NotificationRepo, mailer)
	}

	store := storage.NewLocalStore(cfg.StorageDir, cfg.PublicBaseURL)
	reportWorker := worker.NewReportWorker(
		repos.UserRepo,
		repos.TransactionRepo,
		notifier,
		store,
		cfg.ReportTimeout,
		logger,
	)

	logger.Info("Report worker starting",
		slog.String("queue", cfg.ReportQueue),
		slog.Int("max_attempts", cfg.ReportMaxAttempts))

	err = queueClient.ConsumeReportJobs(ctx, reportWorker.Execute)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Report worker stopped.")
}
