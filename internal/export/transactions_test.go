package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/export"
)

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID:  "t1",
			Description:    "Weekly shop",
			Amount:         decimal.RequireFromString("25.50"),
			OriginalAmount: decimal.RequireFromString("25.50"),
			Currency:       "GBP",
			Type:           domain.TransactionTypeExpense,
			Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			CategoryName:   "Groceries",
			AuditFields: domain.AuditFields{
				CreatedAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
			},
		},
		{
			TransactionID:  "t2",
			Description:    "Hotel",
			Amount:         decimal.RequireFromString("79.12"),
			OriginalAmount: decimal.RequireFromString("100.00"),
			Currency:       "USD",
			Type:           domain.TransactionTypeExpense,
			Date:           time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
			CategoryName:   "Other",
			AuditFields: domain.AuditFields{
				CreatedAt: time.Date(2024, 4, 2, 18, 5, 42, 0, time.UTC),
			},
		},
	}
}

func TestTransactionsCSV(t *testing.T) {
	content, err := export.TransactionsCSV(sampleTransactions())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"ID", "Description", "Amount", "Original_Amount", "Currency",
		"Type", "Date", "Category", "Created At",
	}, records[0])
	assert.Equal(t, []string{
		"t1", "Weekly shop", "25.50", "25.5", "GBP",
		"expense", "2024-03-15", "Groceries", "2024-03-15 09:30:00",
	}, records[1])
	assert.Equal(t, "100", records[2][3])
}

func TestTransactionsCSV_Empty(t *testing.T) {
	content, err := export.TransactionsCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTransactionsXLSX(t *testing.T) {
	content, err := export.TransactionsXLSX(sampleTransactions())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Transactions"}, f.GetSheetList())

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "t1", rows[1][0])
	assert.Equal(t, "25.50", rows[1][2])
	assert.Equal(t, "2024-04-02", rows[2][6])
}
