package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

const dateLayout = "2006-01-02"

// header is the fixed column set shared by both export formats.
var header = []string{
	"ID", "Description", "Amount", "Original_Amount", "Currency",
	"Type", "Date", "Category", "Created At",
}

func row(txn *domain.Transaction) []string {
	return []string{
		txn.TransactionID,
		txn.Description,
		txn.Amount.StringFixed(2),
		txn.OriginalAmount.String(),
		txn.Currency,
		string(txn.Type),
		txn.Date.Format(dateLayout),
		txn.CategoryName,
		txn.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// TransactionsCSV renders the transactions as a CSV document.
func TransactionsCSV(txns []domain.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := range txns {
		if err := w.Write(row(&txns[i])); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// TransactionsXLSX renders the transactions as a single-sheet workbook.
func TransactionsXLSX(txns []domain.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	writeRow := func(rowNum int, values []string) error {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, header); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}
	for i := range txns {
		if err := writeRow(i+2, row(&txns[i])); err != nil {
			return nil, fmt.Errorf("write xlsx row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
