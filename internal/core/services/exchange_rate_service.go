package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

// ExchangeRateService fetches live rates from the upstream rate API.
//
// GetRates and Convert propagate upstream failures as ErrConversion so that
// monetary writes abort instead of storing a wrong amount. GetAllRates is the
// informational listing and degrades to an empty table.
type ExchangeRateService struct {
	BaseService
	apiURL string
	client *http.Client
}

func NewExchangeRateService(apiURL string) *ExchangeRateService {
	return &ExchangeRateService{
		apiURL: strings.TrimRight(apiURL, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// rateAPIResponse is the upstream payload shape.
type rateAPIResponse struct {
	Result            string             `json:"result"`
	BaseCode          string             `json:"base_code"`
	Rates             map[string]float64 `json:"rates"`
	TimeLastUpdateUTC string             `json:"time_last_update_utc"`
}

func (s *ExchangeRateService) fetchRates(ctx context.Context, base string) (*rateAPIResponse, error) {
	url := fmt.Sprintf("%s/%s", s.apiURL, strings.ToUpper(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build rate request: %v", apperrors.ErrConversion, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: rate API unreachable: %v", apperrors.ErrConversion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate API returned status %d", apperrors.ErrConversion, resp.StatusCode)
	}

	var payload rateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rate response: %v", apperrors.ErrConversion, err)
	}
	if payload.Result != "success" || len(payload.Rates) == 0 {
		return nil, fmt.Errorf("%w: rate API returned no usable rates for %s", apperrors.ErrConversion, base)
	}
	return &payload, nil
}

func (s *ExchangeRateService) GetRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	payload, err := s.fetchRates(ctx, base)
	if err != nil {
		return nil, err
	}
	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return rates, nil
}

func (s *ExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return &domain.Conversion{Amount: amount.Round(2), Currency: to, Rate: decimal.NewFromInt(1)}, nil
	}

	rates, err := s.GetRates(ctx, from)
	if err != nil {
		return nil, err
	}
	rate, ok := rates[to]
	if !ok {
		return nil, fmt.Errorf("%w: no rate from %s to %s", apperrors.ErrConversion, from, to)
	}

	return &domain.Conversion{
		Amount:   amount.Mul(rate).Round(2),
		Currency: to,
		Rate:     rate,
	}, nil
}

func (s *ExchangeRateService) GetAllRates(ctx context.Context, base string) *domain.RateTable {
	payload, err := s.fetchRates(ctx, base)
	if err != nil {
		s.LogWarn(ctx, "rate listing degraded to empty table", "base", base, "error", err.Error())
		return &domain.RateTable{Base: strings.ToUpper(base), Rates: map[string]decimal.Decimal{}}
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, rate := range payload.Rates {
		rates[code] = decimal.NewFromFloat(rate)
	}
	return &domain.RateTable{
		Base:      payload.BaseCode,
		Rates:     rates,
		UpdatedAt: payload.TimeLastUpdateUTC,
	}
}
