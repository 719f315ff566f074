package domain

import "time"

// CategoryType distinguishes income from expense categories.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category labels transactions. Names are unique; rows are soft-deleted so
// historical transactions keep their reference.
type Category struct {
	CategoryID string       `json:"category_id"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
	AuditFields
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
