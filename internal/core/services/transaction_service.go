package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

const transactionDateLayout = "2006-01-02"

// TransactionService owns transaction CRUD and monetary normalization.
// Stored amounts are always in the base currency; the submitted amount and
// currency are preserved alongside so nothing is lost in conversion.
type TransactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	categoryRepo portsrepo.CategoryRepository
	exchange     portssvc.ExchangeRateSvcFacade
	notifier     portssvc.NotificationSvcFacade
	baseCurrency string
}

func NewTransactionService(
	txnRepo portsrepo.TransactionRepository,
	categoryRepo portsrepo.CategoryRepository,
	exchange portssvc.ExchangeRateSvcFacade,
	notifier portssvc.NotificationSvcFacade,
	baseCurrency string,
) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
		exchange:     exchange,
		notifier:     notifier,
		baseCurrency: baseCurrency,
	}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// normalizeAmount converts the submitted amount into the base currency,
// rounded to 2 decimal places. A missing or base-currency input rounds both
// the stored and the original amount so the two stay equal.
func (s *TransactionService) normalizeAmount(ctx context.Context, amount decimal.Decimal, currency string) (stored, original decimal.Decimal, cur string, err error) {
	if currency == "" || currency == s.baseCurrency {
		rounded := amount.Round(2)
		return rounded, rounded, s.baseCurrency, nil
	}
	conv, err := s.exchange.Convert(ctx, amount, currency, s.baseCurrency)
	if err != nil {
		return decimal.Zero, decimal.Zero, "", err
	}
	return conv.Amount.Round(2), amount, currency, nil
}

func (s *TransactionService) resolveCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	category, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(transactionDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	stored, original, currency, err := s.normalizeAmount(ctx, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		Description:    req.Description,
		Amount:         stored,
		OriginalAmount: original,
		Currency:       currency,
		Type:           domain.TransactionType(req.Type),
		Date:           date,
		CategoryID:     category.CategoryID,
		CategoryName:   category.Name,
		UserID:         userID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("user_id", userID))

	s.notifyAlert(ctx, userID, txn, "created")
	return &txn, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	txns, total, err := s.txnRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, total, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Type != nil {
		txn.Type = domain.TransactionType(*req.Type)
	}
	if req.Date != nil {
		date, err := time.Parse(transactionDateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
		}
		txn.Date = date
	}
	if req.CategoryID != nil {
		category, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		txn.CategoryID = category.CategoryID
		txn.CategoryName = category.Name
	}

	// Renormalize when either monetary field moves. An amount sent without a
	// currency keeps the transaction's existing currency.
	if req.Amount != nil || req.Currency != nil {
		amount := txn.OriginalAmount
		if req.Amount != nil {
			amount = *req.Amount
		}
		currency := txn.Currency
		if req.Currency != nil {
			currency = *req.Currency
		}
		stored, original, normCurrency, err := s.normalizeAmount(ctx, amount, currency)
		if err != nil {
			return nil, err
		}
		txn.Amount = stored
		txn.OriginalAmount = original
		txn.Currency = normCurrency
	}

	txn.UpdatedAt = time.Now()
	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("user_id", userID))

	s.notifyAlert(ctx, userID, *txn, "updated")
	return txn, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	if err := s.txnRepo.MarkTransactionDeleted(ctx, userID, transactionID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("user_id", userID))

	s.notifyAlert(ctx, userID, *txn, "deleted")
	return nil
}

func (s *TransactionService) ExportTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	// Page 0 disables pagination so the export sees the full filtered set.
	filter.Page = 0
	txns, _, err := s.txnRepo.FindTransactions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}
	return txns, nil
}

// notifyAlert fires the in-app alert. Notification failures never fail the
// write that triggered them.
func (s *TransactionService) notifyAlert(ctx context.Context, userID string, txn domain.Transaction, action string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyTransactionAlert(ctx, userID, txn, action); err != nil {
		s.LogError(ctx, err, "failed to send transaction alert",
			slog.String("transaction_id", txn.TransactionID))
	}
}
