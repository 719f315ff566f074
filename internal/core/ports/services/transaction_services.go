package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// TransactionSvcFacade handles transaction CRUD, filtering and monetary
// normalization. All operations are scoped to the owning user.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	// ExportTransactions returns the full filtered set without pagination,
	// in the same order the listing would use.
	ExportTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// CategorySvcFacade handles category CRUD.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
