package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// exchangeRateHandler serves the informational rate endpoints.
type exchangeRateHandler struct {
	exchangeService portssvc.ExchangeRateSvcFacade
	baseCurrency    string
}

func newExchangeRateHandler(es portssvc.ExchangeRateSvcFacade, baseCurrency string) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeService: es, baseCurrency: baseCurrency}
}

func registerExchangeRateRoutes(rg *gin.RouterGroup, es portssvc.ExchangeRateSvcFacade, baseCurrency string) {
	h := newExchangeRateHandler(es, baseCurrency)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listRates)
		rates.GET("/convert", h.convert)
		rates.POST("/convert-batch", h.convertBatch)
	}
}

// listRates godoc
// @Summary List exchange rates
// @Description Returns all rates against the base. Degrades to an empty table when the upstream is unavailable.
// @Tags exchange-rates
// @Produce json
// @Param base query string false "Base currency (default GBP)"
// @Success 200 {object} domain.RateTable
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listRates(c *gin.Context) {
	base := strings.ToUpper(c.DefaultQuery("base", h.baseCurrency))
	c.JSON(http.StatusOK, h.exchangeService.GetAllRates(c.Request.Context(), base))
}

// convert godoc
// @Summary Convert an amount
// @Tags exchange-rates
// @Produce json
// @Param amount query number true "Amount"
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Success 200 {object} domain.Conversion
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	conversion, err := h.exchangeService.Convert(c.Request.Context(), params.Amount, params.From, params.To)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversion)
}

// convertBatch godoc
// @Summary Convert a batch of amounts
// @Description Converts several amount+currency pairs to one target currency and sums them.
// @Tags exchange-rates
// @Accept json
// @Produce json
// @Param batch body dto.ConvertBatchRequest true "Amounts to convert"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/convert-batch [post]
func (h *exchangeRateHandler) convertBatch(c *gin.Context) {
	var req dto.ConvertBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	converted := make([]decimal.Decimal, 0, len(req.Transactions))
	total := decimal.Zero
	for _, item := range req.Transactions {
		conversion, err := h.exchangeService.Convert(c.Request.Context(), item.Amount, item.Currency, req.To)
		if err != nil {
			respondError(c, err)
			return
		}
		converted = append(converted, conversion.Amount.Round(2))
		total = total.Add(conversion.Amount)
	}

	c.JSON(http.StatusOK, gin.H{
		"currency":  strings.ToUpper(req.To),
		"converted": converted,
		"total":     total.Round(2),
	})
}
