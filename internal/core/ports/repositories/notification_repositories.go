package repositories

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// NotificationRepository defines persistence operations for in-app
// notifications.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
	FindNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	FindUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int64, error)
	FindNotificationByID(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string, readAt time.Time) error
}

// ActivityLogRepository appends and reads audit rows. The log is
// append-only; there are no update or delete operations.
type ActivityLogRepository interface {
	SaveActivityLog(ctx context.Context, log domain.ActivityLog) error
	FindActivityLogs(ctx context.Context, userID string, limit, offset int) ([]domain.ActivityLog, error)
	FindAllActivityLogs(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error)
}
