package domain

import (
	"encoding/json"
	"time"
)

// NotificationType names the event a notification row records.
type NotificationType string

const (
	NotificationTransactionAlert NotificationType = "transaction_alert"
	NotificationReportReady      NotificationType = "report_ready"
)

// Notification is an in-app notification row. Data carries the typed payload
// serialized as JSON: {message, transaction_id, amount, type} for alerts,
// {message, report_url} for report-ready events.
type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	Data           json.RawMessage  `json:"data"`
	ReadAt         *time.Time       `json:"read_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// IsRead reports whether the notification has been acknowledged.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
