package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// ActivityRecorder persists audit rows. Satisfied by the activity service.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, log domain.ActivityLog) error
}

// ActivityLogger creates a middleware that appends one audit row per
// authenticated request, after the response has been written. Unauthenticated
// requests are not logged.
func ActivityLogger(recorder ActivityRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		query := map[string]string{}
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		bodySize := c.Request.ContentLength
		if bodySize < 0 {
			bodySize = 0
		}

		details, err := json.Marshal(domain.ActivityDetails{
			Query:      query,
			BodySize:   bodySize,
			UserAgent:  c.Request.UserAgent(),
			Status:     c.Writer.Status(),
			DurationMS: time.Since(start).Milliseconds(),
		})
		if err != nil {
			details = []byte("{}")
		}

		entry := domain.ActivityLog{
			UserID:    userID,
			Action:    c.Request.Method + " " + c.Request.URL.Path,
			IPAddress: c.ClientIP(),
			Details:   details,
		}

		// Audit failures must not fail the request; they are logged and dropped.
		if err := recorder.RecordActivity(c.Request.Context(), entry); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to record activity log", slog.String("error", err.Error()))
		}
	}
}
