package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
)

func rateServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

const goodRates = `{
    "result": "success",
    "base_code": "GBP",
    "rates": {"GBP": 1, "USD": 1.27, "EUR": 1.17},
    "time_last_update_utc": "Fri, 15 Mar 2024 00:02:31 +0000"
}`

func TestGetRates_Success(t *testing.T) {
	server := rateServer(t, http.StatusOK, goodRates)
	svc := services.NewExchangeRateService(server.URL)

	rates, err := svc.GetRates(context.Background(), "GBP")
	require.NoError(t, err)
	assert.True(t, rates["USD"].Equal(decimal.RequireFromString("1.27")))
	assert.Len(t, rates, 3)
}

func TestGetRates_UpstreamError(t *testing.T) {
	server := rateServer(t, http.StatusInternalServerError, "boom")
	svc := services.NewExchangeRateService(server.URL)

	_, err := svc.GetRates(context.Background(), "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConversion)
}

func TestGetRates_UnsuccessfulResult(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{"result": "error", "rates": {}}`)
	svc := services.NewExchangeRateService(server.URL)

	_, err := svc.GetRates(context.Background(), "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConversion)
}

func TestConvert_AppliesRate(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{
        "result": "success",
        "base_code": "USD",
        "rates": {"GBP": 0.79}
    }`)
	svc := services.NewExchangeRateService(server.URL)

	conv, err := svc.Convert(context.Background(), decimal.RequireFromString("100"), "usd", "gbp")
	require.NoError(t, err)
	assert.True(t, conv.Amount.Equal(decimal.RequireFromString("79")))
	assert.Equal(t, "GBP", conv.Currency)
	assert.True(t, conv.Rate.Equal(decimal.RequireFromString("0.79")))
}

func TestConvert_RoundsToTwoPlaces(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{
        "result": "success",
        "base_code": "USD",
        "rates": {"GBP": 0.791234}
    }`)
	svc := services.NewExchangeRateService(server.URL)

	conv, err := svc.Convert(context.Background(), decimal.RequireFromString("100"), "USD", "GBP")
	require.NoError(t, err)
	assert.True(t, conv.Amount.Equal(decimal.RequireFromString("79.12")),
		"expected 79.12, got %s", conv.Amount)
	assert.True(t, conv.Rate.Equal(decimal.RequireFromString("0.791234")))
}

func TestConvert_SameCurrencySkipsUpstream(t *testing.T) {
	// No server at all: same-currency conversion must not hit the network.
	svc := services.NewExchangeRateService("http://127.0.0.1:0")

	conv, err := svc.Convert(context.Background(), decimal.RequireFromString("42.425"), "GBP", "GBP")
	require.NoError(t, err)
	assert.True(t, conv.Amount.Equal(decimal.RequireFromString("42.43")))
	assert.True(t, conv.Rate.Equal(decimal.NewFromInt(1)))
}

func TestConvert_MissingTargetRate(t *testing.T) {
	server := rateServer(t, http.StatusOK, `{
        "result": "success",
        "base_code": "USD",
        "rates": {"EUR": 0.92}
    }`)
	svc := services.NewExchangeRateService(server.URL)

	_, err := svc.Convert(context.Background(), decimal.NewFromInt(10), "USD", "GBP")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConversion)
}

func TestGetAllRates_DegradesToEmptyTable(t *testing.T) {
	server := rateServer(t, http.StatusBadGateway, "unavailable")
	svc := services.NewExchangeRateService(server.URL)

	table := svc.GetAllRates(context.Background(), "gbp")
	require.NotNil(t, table)
	assert.Equal(t, "GBP", table.Base)
	assert.Empty(t, table.Rates)
}

func TestGetAllRates_Success(t *testing.T) {
	server := rateServer(t, http.StatusOK, goodRates)
	svc := services.NewExchangeRateService(server.URL)

	table := svc.GetAllRates(context.Background(), "GBP")
	require.NotNil(t, table)
	assert.Equal(t, "GBP", table.Base)
	assert.Len(t, table.Rates, 3)
	assert.NotEmpty(t, table.UpdatedAt)
}
