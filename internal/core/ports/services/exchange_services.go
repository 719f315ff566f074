package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// ExchangeRateSvcFacade fetches and applies currency exchange rates.
//
// GetRates and Convert fail loudly: conversions that feed stored monetary
// values must never proceed on a missing rate. GetAllRates is the tolerant
// informational variant and degrades to an empty table instead of erroring.
type ExchangeRateSvcFacade interface {
	GetRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error)
	GetAllRates(ctx context.Context, base string) *domain.RateTable
}
