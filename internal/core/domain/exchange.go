package domain

import "github.com/shopspring/decimal"

// Conversion is the result of converting an amount into a target currency.
type Conversion struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// RateTable is the informational rate listing returned by the tolerant
// gateway variant. Rates may be empty when the upstream is unavailable.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	UpdatedAt string                     `json:"updated_at,omitempty"`
}
