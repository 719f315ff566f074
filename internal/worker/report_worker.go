package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/export"
	"github.com/pennywise-app/pennywise_backend/internal/middleware"
)

// ReportWorker executes queued report jobs: it re-reads the user's
// transactions at execution time, renders the workbook, stores it publicly
// and notifies the requester.
type ReportWorker struct {
	userRepo portsrepo.UserRepository
	txnRepo  portsrepo.TransactionRepository
	notifier portssvc.NotificationSvcFacade
	store    portssvc.ArtifactStore
	timeout  time.Duration
	logger   *slog.Logger
}

func NewReportWorker(
	userRepo portsrepo.UserRepository,
	txnRepo portsrepo.TransactionRepository,
	notifier portssvc.NotificationSvcFacade,
	store portssvc.ArtifactStore,
	timeout time.Duration,
	logger *slog.Logger,
) *ReportWorker {
	return &ReportWorker{
		userRepo: userRepo,
		txnRepo:  txnRepo,
		notifier: notifier,
		store:    store,
		timeout:  timeout,
		logger:   logger,
	}
}

// Execute runs one job attempt under the configured timeout. The caller is
// responsible for retry scheduling.
func (w *ReportWorker) Execute(ctx context.Context, job domain.ReportJob) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	logger := w.logger.With(
		slog.String("job_id", job.JobID),
		slog.String("user_id", job.UserID),
		slog.Int("attempt", job.Attempt),
	)
	ctx = middleware.WithLogger(ctx, logger)

	user, err := w.userRepo.FindUserByID(ctx, job.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s no longer exists", apperrors.ErrJobExecution, job.UserID)
		}
		return fmt.Errorf("%w: load user: %v", apperrors.ErrJobExecution, err)
	}

	// Filters are re-applied against current data, not a snapshot taken at
	// request time.
	filter := job.Filters.ToTransactionFilter()
	txns, _, err := w.txnRepo.FindTransactions(ctx, job.UserID, filter)
	if err != nil {
		return fmt.Errorf("%w: query transactions: %v", apperrors.ErrJobExecution, err)
	}

	content, err := export.TransactionsXLSX(txns)
	if err != nil {
		return fmt.Errorf("%w: render workbook: %v", apperrors.ErrJobExecution, err)
	}

	relPath := fmt.Sprintf("reports/transactions_%s.xlsx", time.Now().Format("20060102_150405"))
	url, err := w.store.Store(ctx, relPath, content)
	if err != nil {
		return fmt.Errorf("%w: store artifact: %v", apperrors.ErrJobExecution, err)
	}

	if err := w.notifier.NotifyReportReady(ctx, *user, url); err != nil {
		return fmt.Errorf("%w: notify requester: %v", apperrors.ErrJobExecution, err)
	}

	logger.Info("report generated",
		slog.Int("transaction_count", len(txns)),
		slog.String("report_url", url))
	return nil
}
