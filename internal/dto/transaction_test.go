package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

func TestToFilter_Defaults(t *testing.T) {
	filter, err := dto.ListTransactionsParams{}.ToFilter()
	require.NoError(t, err)

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 10, filter.PerPage)
	assert.Empty(t, filter.CategoryIDs)
	assert.Nil(t, filter.DateFrom)
	assert.Nil(t, filter.AmountMin)
}

func TestToFilter_FullSet(t *testing.T) {
	params := dto.ListTransactionsParams{
		CategoryIDs: "cat-1,cat-2",
		Type:        "expense",
		DateFrom:    "2024-01-01",
		DateTo:      "2024-12-31",
		AmountMin:   "10.50",
		AmountMax:   "99.99",
		SortBy:      "amount",
		Order:       "asc",
		Page:        3,
		PerPage:     25,
	}

	filter, err := params.ToFilter()
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryIDs{"cat-1", "cat-2"}, filter.CategoryIDs)
	assert.Equal(t, domain.TransactionTypeExpense, filter.Type)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	assert.True(t, filter.AmountMin.Equal(decimal.RequireFromString("10.50")))
	assert.True(t, filter.AmountMax.Equal(decimal.RequireFromString("99.99")))
	assert.Equal(t, "amount", filter.SortBy)
	assert.Equal(t, domain.SortAsc, filter.Order)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 25, filter.PerPage)
}

func TestToFilter_BadDate(t *testing.T) {
	_, err := dto.ListTransactionsParams{DateFrom: "01/02/2024"}.ToFilter()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToFilter_BadAmount(t *testing.T) {
	_, err := dto.ListTransactionsParams{AmountMin: "ten"}.ToFilter()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToReportFilter_DateOrder(t *testing.T) {
	_, err := dto.GenerateReportRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-01-01",
	}.ToReportFilter()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToReportFilter_OpenEnded(t *testing.T) {
	filter, err := dto.GenerateReportRequest{StartDate: "2024-01-01"}.ToReportFilter()
	require.NoError(t, err)
	assert.NotNil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
}

func TestNewPaginatedTransactionsResponse(t *testing.T) {
	txns := []domain.Transaction{
		{TransactionID: "t1", Amount: decimal.RequireFromString("12.34"), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	resp := dto.NewPaginatedTransactionsResponse(txns, 2, 10, 35)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, int64(35), resp.Total)
	assert.Equal(t, 4, resp.LastPage)

	empty := dto.NewPaginatedTransactionsResponse(nil, 1, 10, 0)
	assert.Equal(t, 1, empty.LastPage)
}
