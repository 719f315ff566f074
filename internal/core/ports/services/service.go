package services

// ServiceContainer holds all service facades for dependency injection into
// the handler layer.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	User         UserSvcFacade
	Transaction  TransactionSvcFacade
	Category     CategorySvcFacade
	Dashboard    DashboardSvcFacade
	Report       ReportSvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Notification NotificationSvcFacade
	Activity     ActivitySvcFacade
}
