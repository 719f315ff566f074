package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
	"github.com/pennywise-app/pennywise_backend/internal/export"
	"github.com/pennywise-app/pennywise_backend/internal/middleware"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// transactionHandler handles transaction CRUD, exports and report requests.
type transactionHandler struct {
	txnService    portssvc.TransactionSvcFacade
	reportService portssvc.ReportSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportSvcFacade) *transactionHandler {
	return &transactionHandler{txnService: ts, reportService: rs}
}

func registerTransactionRoutes(rg *gin.RouterGroup, cfg *config.Config, ts portssvc.TransactionSvcFacade, rs portssvc.ReportSvcFacade) {
	h := newTransactionHandler(ts, rs)

	exportLimiter := middleware.RateLimitByUser(middleware.NewRateLimiter(cfg.ExportRateLimit))

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", requireAbility(domain.AbilityViewTransaction), h.listTransactions)
		transactions.POST("", requireAbility(domain.AbilityCreateTransaction), h.createTransaction)
		transactions.GET("/export", requireAbility(domain.AbilityViewTransaction), exportLimiter, h.exportTransactions)
		transactions.GET("/export-data", requireAbility(domain.AbilityViewTransaction), h.exportTransactionData)
		transactions.POST("/generate-report", requireAbility(domain.AbilityViewTransaction), h.generateReport)
		transactions.GET("/:id", requireAbility(domain.AbilityViewTransaction), h.getTransaction)
		transactions.PUT("/:id", requireAbility(domain.AbilityCreateTransaction), h.updateTransaction)
		transactions.DELETE("/:id", requireAbility(domain.AbilityDeleteTransaction), h.deleteTransaction)
	}
}

func bindFilter(c *gin.Context) (domain.TransactionFilter, bool) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return domain.TransactionFilter{}, false
	}
	filter, err := params.ToFilter()
	if err != nil {
		respondError(c, err)
		return domain.TransactionFilter{}, false
	}
	return filter, true
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the caller's transactions, filtered and paginated.
// @Tags transactions
// @Produce json
// @Param category_ids query string false "Comma-separated category IDs"
// @Param type query string false "income or expense"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Param amount_min query number false "Minimum stored amount"
// @Param amount_max query number false "Maximum stored amount"
// @Param sort_by query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param page query int false "Page number (default 1)"
// @Param per_page query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.PaginatedTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	txns, total, err := h.txnService.ListTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPaginatedTransactionsResponse(txns, filter.Page, filter.PerPage, total))
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a transaction. Non-base currency amounts are converted to the base currency on write.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txn, err := h.txnService.GetTransaction(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update. An amount sent without a currency keeps the stored currency.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// exportTransactions godoc
// @Summary Export transactions as a file
// @Description Streams the filtered transactions as an xlsx workbook (default) or csv.
// @Tags transactions
// @Produce application/octet-stream
// @Param format query string false "xlsx or csv (default xlsx)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	txns, err := h.txnService.ExportTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		content, err := export.TransactionsCSV(txns)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions_%s.csv"`, timestamp))
		c.Data(http.StatusOK, "text/csv", content)
	case "xlsx":
		content, err := export.TransactionsXLSX(txns)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transactions_%s.xlsx"`, timestamp))
		c.Data(http.StatusOK, xlsxContentType, content)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be xlsx or csv"})
	}
}

// exportTransactionData godoc
// @Summary Export transactions as JSON
// @Description Returns the full filtered set without pagination, for client-side export.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/export-data [get]
func (h *transactionHandler) exportTransactionData(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	txns, err := h.txnService.ExportTransactions(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		data[i] = dto.ToTransactionResponse(&txns[i])
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
}

// generateReport godoc
// @Summary Request an asynchronous report
// @Description Enqueues a report job. The artifact link arrives via notification when ready.
// @Tags transactions
// @Accept json
// @Produce json
// @Param report body dto.GenerateReportRequest true "Report filter"
// @Success 202 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/generate-report [post]
func (h *transactionHandler) generateReport(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	filter, err := req.ToReportFilter()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.reportService.RequestReport(c.Request.Context(), userID, filter); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Report generation has been queued. You will be notified when it is ready."})
}
