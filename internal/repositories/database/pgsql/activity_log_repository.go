package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

type PgxActivityLogRepository struct {
	BaseRepository
}

func newPgxActivityLogRepository(db *pgxpool.Pool) *PgxActivityLogRepository {
	return &PgxActivityLogRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ActivityLogRepository = (*PgxActivityLogRepository)(nil)

const activityLogColumns = `log_id, user_id, action, ip_address, details, created_at`

func (r *PgxActivityLogRepository) SaveActivityLog(ctx context.Context, log domain.ActivityLog) error {
	query := `
        INSERT INTO activity_logs (log_id, user_id, action, ip_address, details, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		log.LogID,
		log.UserID,
		log.Action,
		log.IPAddress,
		log.Details,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity log: %w", err)
	}
	return nil
}

func (r *PgxActivityLogRepository) collectActivityLogs(rows pgx.Rows) ([]domain.ActivityLog, error) {
	defer rows.Close()

	logs := []domain.ActivityLog{}
	for rows.Next() {
		var log domain.ActivityLog
		err := rows.Scan(
			&log.LogID,
			&log.UserID,
			&log.Action,
			&log.IPAddress,
			&log.Details,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log row: %w", err)
		}
		logs = append(logs, log)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity log rows: %w", rows.Err())
	}
	return logs, nil
}

func (r *PgxActivityLogRepository) FindActivityLogs(ctx context.Context, userID string, limit, offset int) ([]domain.ActivityLog, error) {
	query := `
        SELECT ` + activityLogColumns + `
        FROM activity_logs
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	return r.collectActivityLogs(rows)
}

func (r *PgxActivityLogRepository) FindAllActivityLogs(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	query := `
        SELECT ` + activityLogColumns + `
        FROM activity_logs
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	return r.collectActivityLogs(rows)
}
