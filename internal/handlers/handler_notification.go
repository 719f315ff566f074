package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

// notificationHandler serves in-app notifications for the caller.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

func registerNotificationRoutes(rg *gin.RouterGroup, ns portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(ns)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread", h.listUnread)
		notifications.GET("/unread/count", h.countUnread)
		notifications.PUT("/:id/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": notifications})
}

// listUnread godoc
// @Summary List unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Security BearerAuth
// @Router /notifications/unread [get]
func (h *notificationHandler) listUnread(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListUnreadNotifications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": notifications})
}

// countUnread godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /notifications/unread/count [get]
func (h *notificationHandler) countUnread(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.CountUnreadNotifications(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// markRead godoc
// @Summary Mark a notification as read
// @Description Idempotent; marking an already read notification keeps its original read time.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} domain.Notification
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkNotificationRead(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notification)
}
