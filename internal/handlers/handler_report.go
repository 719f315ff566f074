package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// reportHandler serves the synchronous report aggregates.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports", requireAbility(domain.AbilityViewDashboard))
	{
		reports.GET("/monthly-average", h.monthlyAverage)
		reports.GET("/category-comparison", h.categoryComparison)
		reports.GET("/top-expenses", h.topExpenses)
	}
}

// monthlyAverage godoc
// @Summary Monthly average amounts
// @Tags reports
// @Produce json
// @Success 200 {array} domain.MonthlyAverage
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly-average [get]
func (h *reportHandler) monthlyAverage(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	averages, err := h.reportService.MonthlyAverage(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": averages})
}

// categoryComparison godoc
// @Summary Category totals for the current month
// @Tags reports
// @Produce json
// @Success 200 {array} domain.CategoryTotal
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/category-comparison [get]
func (h *reportHandler) categoryComparison(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	totals, err := h.reportService.CategoryComparison(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": totals})
}

// topExpenses godoc
// @Summary Largest expenses
// @Tags reports
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-expenses [get]
func (h *reportHandler) topExpenses(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	expenses, err := h.reportService.TopExpenses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]dto.TransactionResponse, len(expenses))
	for i := range expenses {
		data[i] = dto.ToTransactionResponse(&expenses[i])
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}
