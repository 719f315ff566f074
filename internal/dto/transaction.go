package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

const dateLayout = "2006-01-02"

// CreateTransactionRequest creates a transaction. Currency is optional and
// defaults to the base currency; amounts in other currencies are converted
// on write.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Date        string          `json:"date" binding:"required,dateformat"`
	CategoryID  string          `json:"category_id" binding:"required"`
}

// UpdateTransactionRequest applies a partial update; nil fields are untouched.
// When Amount is set without Currency, the transaction's stored currency is
// reused for normalization.
type UpdateTransactionRequest struct {
	Description *string          `json:"description,omitempty" binding:"omitempty,max=255"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Currency    *string          `json:"currency,omitempty" binding:"omitempty,len=3"`
	Type        *string          `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Date        *string          `json:"date,omitempty" binding:"omitempty,dateformat"`
	CategoryID  *string          `json:"category_id,omitempty"`
}

// ListTransactionsParams are the query parameters accepted by the listing
// and export endpoints. category_ids arrives as a comma-separated string on
// the query string; JSON callers may also post an array (see
// domain.CategoryIDs).
type ListTransactionsParams struct {
	CategoryIDs string `form:"category_ids"`
	Type        string `form:"type" binding:"omitempty,oneof=income expense"`
	DateFrom    string `form:"date_from" binding:"omitempty,dateformat"`
	DateTo      string `form:"date_to" binding:"omitempty,dateformat"`
	AmountMin   string `form:"amount_min"`
	AmountMax   string `form:"amount_max"`
	SortBy      string `form:"sort_by"`
	Order       string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page        int    `form:"page" binding:"omitempty,min=1"`
	PerPage     int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// ToFilter normalizes the raw query parameters into the canonical filter
// spec. Absent keys produce zero-valued (unconstrained) fields.
func (p ListTransactionsParams) ToFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Type:    domain.TransactionType(p.Type),
		SortBy:  p.SortBy,
		Order:   domain.SortOrder(p.Order),
		Page:    p.Page,
		PerPage: p.PerPage,
	}

	if p.CategoryIDs != "" {
		filter.CategoryIDs = domain.ParseCategoryIDs(p.CategoryIDs)
	}

	var err error
	if filter.DateFrom, err = parseDate(p.DateFrom, "date_from"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseDate(p.DateTo, "date_to"); err != nil {
		return filter, err
	}
	if filter.AmountMin, err = parseAmount(p.AmountMin, "amount_min"); err != nil {
		return filter, err
	}
	if filter.AmountMax, err = parseAmount(p.AmountMax, "amount_max"); err != nil {
		return filter, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 10
	}

	return filter, nil
}

func parseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD format", apperrors.ErrValidation, field)
	}
	return &t, nil
}

func parseAmount(value, field string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a decimal number", apperrors.ErrValidation, field)
	}
	return &d, nil
}

// TransactionResponse is the public shape of a transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transaction_id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Currency       string          `json:"currency"`
	Type           string          `json:"type"`
	Date           string          `json:"date"`
	CategoryID     string          `json:"category_id"`
	Category       string          `json:"category,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToTransactionResponse maps a domain transaction to its response shape.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		Description:    txn.Description,
		Amount:         txn.Amount,
		OriginalAmount: txn.OriginalAmount,
		Currency:       txn.Currency,
		Type:           string(txn.Type),
		Date:           txn.Date.Format(dateLayout),
		CategoryID:     txn.CategoryID,
		Category:       txn.CategoryName,
		CreatedAt:      txn.CreatedAt,
	}
}

// PaginatedTransactionsResponse is the listing envelope.
type PaginatedTransactionsResponse struct {
	Data     []TransactionResponse `json:"data"`
	Page     int                   `json:"page"`
	PerPage  int                   `json:"per_page"`
	Total    int64                 `json:"total"`
	LastPage int                   `json:"last_page"`
}

// NewPaginatedTransactionsResponse assembles the envelope from a result page.
func NewPaginatedTransactionsResponse(txns []domain.Transaction, page, perPage int, total int64) PaginatedTransactionsResponse {
	data := make([]TransactionResponse, len(txns))
	for i := range txns {
		data[i] = ToTransactionResponse(&txns[i])
	}
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return PaginatedTransactionsResponse{
		Data:     data,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
		LastPage: lastPage,
	}
}
