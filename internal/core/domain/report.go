package domain

import "github.com/shopspring/decimal"

// CategoryTotal is one dashboard aggregation row: total stored amount per
// category.
type CategoryTotal struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category"`
	Total        decimal.Decimal `json:"total"`
}

// TypeTotal is the total stored amount per transaction type.
type TypeTotal struct {
	Type  TransactionType `json:"type"`
	Total decimal.Decimal `json:"total"`
}

// MonthTotal is the total stored amount per calendar month ("2006-01").
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategoryBreakdown extends a category total with its income/expense split.
// Used by the advanced dashboard summary.
type CategoryBreakdown struct {
	CategoryTotal
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardSummary groups the plain dashboard aggregates.
type DashboardSummary struct {
	ByCategory []CategoryTotal `json:"by_category"`
	ByType     []TypeTotal     `json:"by_type"`
	ByMonth    []MonthTotal    `json:"by_month"`
}

// AdvancedSummary groups the filtered dashboard aggregates.
type AdvancedSummary struct {
	TotalsByType  []TypeTotal         `json:"totals_by_type"`
	TopCategories []CategoryBreakdown `json:"top_categories"`
	TotalsByMonth []MonthTotal        `json:"totals_by_month"`
}

// MonthlyAverage is the average stored amount for one calendar month.
type MonthlyAverage struct {
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	AvgAmount decimal.Decimal `json:"avg_amount"`
}
