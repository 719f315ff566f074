package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
	"github.com/pennywise-app/pennywise_backend/internal/middleware"
)

// activityLogHandler serves the audit trail.
type activityLogHandler struct {
	activityService portssvc.ActivitySvcFacade
}

func newActivityLogHandler(as portssvc.ActivitySvcFacade) *activityLogHandler {
	return &activityLogHandler{activityService: as}
}

func registerActivityLogRoutes(rg *gin.RouterGroup, as portssvc.ActivitySvcFacade) {
	h := newActivityLogHandler(as)
	rg.GET("/activity-logs", h.listActivityLogs)
}

// listActivityLogs godoc
// @Summary List activity logs
// @Description Returns the caller's own audit rows. Callers holding manage_users see everyone's.
// @Tags activity-logs
// @Produce json
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} domain.ActivityLog
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /activity-logs [get]
func (h *activityLogHandler) listActivityLogs(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	includeAll := middleware.TokenCan(c, domain.AbilityManageUsers)
	logs, err := h.activityService.ListActivityLogs(c.Request.Context(), userID, includeAll, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}
