package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

const topExpenseLimit = 10

// ReportService serves the synchronous report aggregates and enqueues the
// asynchronous report jobs. Report generation itself happens in the worker.
type ReportService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	publisher     portssvc.ReportJobPublisher
}

func NewReportService(reportingRepo portsrepo.ReportingRepository, publisher portssvc.ReportJobPublisher) *ReportService {
	return &ReportService{
		reportingRepo: reportingRepo,
		publisher:     publisher,
	}
}

var _ portssvc.ReportSvcFacade = (*ReportService)(nil)

func (s *ReportService) MonthlyAverage(ctx context.Context, userID string) ([]domain.MonthlyAverage, error) {
	averages, err := s.reportingRepo.MonthlyAverages(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly averages: %w", err)
	}
	return averages, nil
}

func (s *ReportService) CategoryComparison(ctx context.Context, userID string) ([]domain.CategoryTotal, error) {
	now := time.Now()
	totals, err := s.reportingRepo.CategoryComparison(ctx, userID, now.Year(), now.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to compute category comparison: %w", err)
	}
	return totals, nil
}

func (s *ReportService) TopExpenses(ctx context.Context, userID string) ([]domain.Transaction, error) {
	expenses, err := s.reportingRepo.TopExpenses(ctx, userID, topExpenseLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top expenses: %w", err)
	}
	return expenses, nil
}

func (s *ReportService) RequestReport(ctx context.Context, userID string, filter domain.ReportFilter) error {
	job := domain.ReportJob{
		JobID:       uuid.NewString(),
		UserID:      userID,
		Filters:     filter,
		Attempt:     1,
		RequestedAt: time.Now(),
	}

	if err := s.publisher.PublishReportJob(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue report job: %w", err)
	}

	s.LogInfo(ctx, "report job enqueued",
		slog.String("job_id", job.JobID),
		slog.String("user_id", userID))
	return nil
}
