package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) *PgxNotificationRepository {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

const notificationColumns = `notification_id, user_id, type, data, read_at, created_at`

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(
		&n.NotificationID,
		&n.UserID,
		&n.Type,
		&n.Data,
		&n.ReadAt,
		&n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan notification: %w", err)
	}
	return &n, nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
        INSERT INTO notifications (notification_id, user_id, type, data, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.UserID,
		notification.Type,
		notification.Data,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) findNotifications(ctx context.Context, query string, args ...any) ([]domain.Notification, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, *n)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) FindNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `
        SELECT ` + notificationColumns + `
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	return r.findNotifications(ctx, query, userID)
}

func (r *PgxNotificationRepository) FindUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `
        SELECT ` + notificationColumns + `
        FROM notifications
        WHERE user_id = $1 AND read_at IS NULL
        ORDER BY created_at DESC;
    `
	return r.findNotifications(ctx, query, userID)
}

func (r *PgxNotificationRepository) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL;`
	if err := r.Pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	query := `
        SELECT ` + notificationColumns + `
        FROM notifications
        WHERE notification_id = $1 AND user_id = $2;
    `
	return scanNotification(r.Pool.QueryRow(ctx, query, notificationID, userID))
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID string, readAt time.Time) error {
	query := `
        UPDATE notifications
        SET read_at = COALESCE(read_at, $1)
        WHERE notification_id = $2 AND user_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, readAt, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
