package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense entry. Amount is always stored in
// the base currency; OriginalAmount and Currency preserve what the caller
// submitted. If Currency equals the base currency the two amounts are equal.
type Transaction struct {
	TransactionID  string          `json:"transaction_id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	Currency       string          `json:"currency"`
	Type           TransactionType `json:"type"`
	Date           time.Time       `json:"date"`
	CategoryID     string          `json:"category_id"`
	CategoryName   string          `json:"category_name,omitempty"`
	UserID         string          `json:"user_id"`
	AuditFields
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CategoryIDs accepts either a JSON array of ids or a single comma-separated
// string. Both entry points (JSON listing and file export) feed the same
// filter, so normalization happens once here rather than in every caller.
type CategoryIDs []string

// UnmarshalJSON implements the list-or-string union.
func (c *CategoryIDs) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*c = normalizeIDs(list)
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*c = ParseCategoryIDs(joined)
	return nil
}

// ParseCategoryIDs splits a comma-separated id string, dropping empty parts.
func ParseCategoryIDs(joined string) CategoryIDs {
	return normalizeIDs(strings.Split(joined, ","))
}

func normalizeIDs(parts []string) CategoryIDs {
	out := make(CategoryIDs, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SortOrder is the direction of a dynamic sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TransactionFilter is the full filter spec recognised by the listing and
// export endpoints. Nil / empty fields mean "no constraint". All present
// filters combine conjunctively.
type TransactionFilter struct {
	CategoryIDs CategoryIDs
	Type        TransactionType
	DateFrom    *time.Time
	DateTo      *time.Time
	AmountMin   *decimal.Decimal
	AmountMax   *decimal.Decimal
	SortBy      string
	Order       SortOrder
	Page        int
	PerPage     int
}

// ReportFilter is the narrower at-rest filter carried by a queued report job:
// type and date range only.
type ReportFilter struct {
	Type      TransactionType `json:"type,omitempty"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
}

// ToTransactionFilter widens a report filter for the query engine. Report
// rows keep the default date-descending order.
func (f ReportFilter) ToTransactionFilter() TransactionFilter {
	return TransactionFilter{
		Type:     f.Type,
		DateFrom: f.StartDate,
		DateTo:   f.EndDate,
	}
}
