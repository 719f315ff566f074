package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// --- Mock UserRepository / RoleRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindRolesForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockRoleRepository) FindPermissionsForRole(ctx context.Context, roleID string) ([]domain.Permission, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Permission), args.Error(1)
}

// --- Mock AccessTokenRepository ---
type MockAccessTokenRepository struct {
	mock.Mock
}

func (m *MockAccessTokenRepository) SaveAccessToken(ctx context.Context, token domain.AccessToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAccessTokenRepository) FindAccessTokenByID(ctx context.Context, tokenID string) (*domain.AccessToken, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccessToken), args.Error(1)
}

func (m *MockAccessTokenRepository) DeleteAccessToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockAccessTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, userID, transactionID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, transactionID, deletedAt)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) TotalsByCategory(ctx context.Context, userID string, from, to *time.Time) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingRepository) TotalsByType(ctx context.Context, userID string, from, to *time.Time) ([]domain.TypeTotal, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeTotal), args.Error(1)
}

func (m *MockReportingRepository) TotalsByMonth(ctx context.Context, userID string, from, to *time.Time) ([]domain.MonthTotal, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthTotal), args.Error(1)
}

func (m *MockReportingRepository) TopCategories(ctx context.Context, userID string, from, to *time.Time, limit int) ([]domain.CategoryBreakdown, error) {
	args := m.Called(ctx, userID, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryBreakdown), args.Error(1)
}

func (m *MockReportingRepository) MonthlyAverages(ctx context.Context, userID string) ([]domain.MonthlyAverage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAverage), args.Error(1)
}

func (m *MockReportingRepository) CategoryComparison(ctx context.Context, userID string, year int, month time.Month) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingRepository) TopExpenses(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) MarkCategoryDeleted(ctx context.Context, categoryID string, deletedAt time.Time) error {
	args := m.Called(ctx, categoryID, deletedAt)
	return args.Error(0)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID string, readAt time.Time) error {
	args := m.Called(ctx, userID, notificationID, readAt)
	return args.Error(0)
}

// --- Mock ExchangeRateSvcFacade ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockExchangeRateService) GetAllRates(ctx context.Context, base string) *domain.RateTable {
	args := m.Called(ctx, base)
	return args.Get(0).(*domain.RateTable)
}

// --- Mock NotificationSvcFacade ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) NotifyTransactionAlert(ctx context.Context, userID string, txn domain.Transaction, action string) error {
	args := m.Called(ctx, userID, txn, action)
	return args.Error(0)
}

func (m *MockNotificationService) NotifyReportReady(ctx context.Context, user domain.User, reportURL string) error {
	args := m.Called(ctx, user, reportURL)
	return args.Error(0)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) ListUnreadNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) CountUnreadNotifications(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkNotificationRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

// --- Mock ReportJobPublisher ---
type MockReportJobPublisher struct {
	mock.Mock
}

func (m *MockReportJobPublisher) PublishReportJob(ctx context.Context, job domain.ReportJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}
