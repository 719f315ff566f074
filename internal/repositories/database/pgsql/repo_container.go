package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	accessTokenRepo := newPgxAccessTokenRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	activityLogRepo := newPgxActivityLogRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		RoleRepo:         userRepo,
		AccessTokenRepo:  accessTokenRepo,
		TransactionRepo:  transactionRepo,
		CategoryRepo:     categoryRepo,
		ReportingRepo:    reportingRepo,
		NotificationRepo: notificationRepo,
		ActivityLogRepo:  activityLogRepo,
	}
}
