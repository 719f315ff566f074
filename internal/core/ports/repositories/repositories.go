package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepository
	RoleRepo         RoleRepository
	AccessTokenRepo  AccessTokenRepository
	TransactionRepo  TransactionRepository
	CategoryRepo     CategoryRepository
	ReportingRepo    ReportingRepository
	NotificationRepo NotificationRepository
	ActivityLogRepo  ActivityLogRepository
}
