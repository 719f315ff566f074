package repositories

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
// Every read is scoped to the owning user; a transaction belonging to a
// different user behaves exactly like a missing one.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	// FindTransactions applies the filter spec. Page <= 0 disables
	// pagination and returns the full matching set (used by exports).
	// The returned total counts all matches regardless of pagination.
	FindTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	MarkTransactionDeleted(ctx context.Context, userID, transactionID string, deletedAt time.Time) error
}

// ReportingRepository runs the aggregation queries behind the dashboard and
// the synchronous report endpoints.
type ReportingRepository interface {
	TotalsByCategory(ctx context.Context, userID string, from, to *time.Time) ([]domain.CategoryTotal, error)
	TotalsByType(ctx context.Context, userID string, from, to *time.Time) ([]domain.TypeTotal, error)
	TotalsByMonth(ctx context.Context, userID string, from, to *time.Time) ([]domain.MonthTotal, error)
	TopCategories(ctx context.Context, userID string, from, to *time.Time, limit int) ([]domain.CategoryBreakdown, error)
	MonthlyAverages(ctx context.Context, userID string) ([]domain.MonthlyAverage, error)
	CategoryComparison(ctx context.Context, userID string, year int, month time.Month) ([]domain.CategoryTotal, error)
	TopExpenses(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
}
