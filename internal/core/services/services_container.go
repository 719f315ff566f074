package services

import (
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The publisher and mailer are optional: the API
// binary wires both, the worker wires neither.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	publisher portssvc.ReportJobPublisher,
	mailer portssvc.Mailer,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ExchangeRate = NewExchangeRateService(cfg.ExchangeAPIURL)
	container.Notification = NewNotificationService(repos.NotificationRepo, mailer)

	container.Auth = NewAuthService(cfg, repos.UserRepo, repos.RoleRepo, repos.AccessTokenRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.CategoryRepo,
		container.ExchangeRate,
		container.Notification,
		cfg.BaseCurrency,
	)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Dashboard = NewDashboardService(repos.ReportingRepo)
	container.Report = NewReportService(repos.ReportingRepo, publisher)
	container.Activity = NewActivityService(repos.ActivityLogRepo)

	return container
}
