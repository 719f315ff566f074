package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// NotificationSvcFacade delivers and lists notifications. Dispatch methods
// always write the in-app row; report-ready events additionally go to the
// external channel when one is configured.
type NotificationSvcFacade interface {
	NotifyTransactionAlert(ctx context.Context, userID string, txn domain.Transaction, action string) error
	NotifyReportReady(ctx context.Context, user domain.User, reportURL string) error

	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	ListUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID string) (int64, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
}

// ActivitySvcFacade records and lists audit rows.
type ActivitySvcFacade interface {
	RecordActivity(ctx context.Context, log domain.ActivityLog) error
	// ListActivityLogs returns the caller's own rows; callers holding
	// manage_users see everyone's.
	ListActivityLogs(ctx context.Context, userID string, includeAll bool, limit, offset int) ([]domain.ActivityLog, error)
}
