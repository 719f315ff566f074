package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
)

// NotificationService always writes the in-app row. Report-ready events go
// out through the mailer as well when one is configured; mail failures are
// logged and do not fail the dispatch.
type NotificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
	mailer           portssvc.Mailer
}

func NewNotificationService(notificationRepo portsrepo.NotificationRepository, mailer portssvc.Mailer) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		mailer:           mailer,
	}
}

var _ portssvc.NotificationSvcFacade = (*NotificationService)(nil)

type transactionAlertData struct {
	Message       string          `json:"message"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
}

type reportReadyData struct {
	Message   string `json:"message"`
	ReportURL string `json:"report_url"`
}

func (s *NotificationService) save(ctx context.Context, userID string, notifType domain.NotificationType, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           notifType,
		Data:           payload,
		CreatedAt:      time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (s *NotificationService) NotifyTransactionAlert(ctx context.Context, userID string, txn domain.Transaction, action string) error {
	data := transactionAlertData{
		Message:       fmt.Sprintf("Transaction %s: %s", action, txn.Description),
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
	}
	return s.save(ctx, userID, domain.NotificationTransactionAlert, data)
}

func (s *NotificationService) NotifyReportReady(ctx context.Context, user domain.User, reportURL string) error {
	data := reportReadyData{
		Message:   "Your transaction report is ready for download.",
		ReportURL: reportURL,
	}
	if err := s.save(ctx, user.UserID, domain.NotificationReportReady, data); err != nil {
		return err
	}

	if s.mailer != nil {
		body := fmt.Sprintf("Hello %s,\n\nYour transaction report is ready: %s\n", user.Name, reportURL)
		if err := s.mailer.Send(ctx, user.Email, "Your transaction report is ready", body); err != nil {
			s.LogError(ctx, err, "failed to send report-ready mail",
				slog.String("user_id", user.UserID))
		}
	}
	return nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) ListUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindUnreadNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	if err := s.notificationRepo.MarkNotificationRead(ctx, userID, notificationID, time.Now()); err != nil {
		return nil, err
	}
	notification, err := s.notificationRepo.FindNotificationByID(ctx, userID, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload notification: %w", err)
	}
	return notification, nil
}
