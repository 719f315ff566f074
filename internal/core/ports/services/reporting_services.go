package services

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// DashboardSvcFacade produces the aggregated dashboard views.
type DashboardSvcFacade interface {
	Summary(ctx context.Context, userID string) (*domain.DashboardSummary, error)
	AdvancedSummary(ctx context.Context, userID string, from, to *time.Time) (*domain.AdvancedSummary, error)
}

// ReportSvcFacade covers the synchronous report aggregates and the
// asynchronous report-generation request.
type ReportSvcFacade interface {
	MonthlyAverage(ctx context.Context, userID string) ([]domain.MonthlyAverage, error)
	CategoryComparison(ctx context.Context, userID string) ([]domain.CategoryTotal, error)
	TopExpenses(ctx context.Context, userID string) ([]domain.Transaction, error)
	// RequestReport validates the filter and enqueues a report job. The
	// report itself is produced later by the worker.
	RequestReport(ctx context.Context, userID string, filter domain.ReportFilter) error
}

// ReportJobPublisher hands a report job to the durable queue. Dispatch is
// delayed by the configured interval before a worker may pick it up.
type ReportJobPublisher interface {
	PublishReportJob(ctx context.Context, job domain.ReportJob) error
}

// ArtifactStore writes an export artifact to public storage and returns its
// fully qualified download URL.
type ArtifactStore interface {
	Store(ctx context.Context, relPath string, content []byte) (string, error)
}

// Mailer is the external notification channel for report-ready events.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
