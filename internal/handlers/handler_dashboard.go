package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// dashboardHandler serves the aggregated dashboard views.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard", requireAbility(domain.AbilityViewDashboard))
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/advanced", h.advancedSummary)
	}
}

// summary godoc
// @Summary Dashboard summary
// @Description Totals by category, type and month over the caller's full history.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// advancedSummary godoc
// @Summary Advanced dashboard summary
// @Description Date-bounded totals by type, top categories with income/expense split, and month totals.
// @Tags dashboard
// @Produce json
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Success 200 {object} domain.AdvancedSummary
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/advanced [get]
func (h *dashboardHandler) advancedSummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var from, to *time.Time
	var err error
	if from, err = parseDashboardDate(params.DateFrom); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date_from must be a date in YYYY-MM-DD format"})
		return
	}
	if to, err = parseDashboardDate(params.DateTo); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date_to must be a date in YYYY-MM-DD format"})
		return
	}

	summary, err := h.dashboardService.AdvancedSummary(c.Request.Context(), userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func parseDashboardDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
