package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockNotificationRepository
	mockMailer *MockMailer
	service    *services.NotificationService
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNotificationRepository)
	suite.mockMailer = new(MockMailer)
	suite.service = services.NewNotificationService(suite.mockRepo, suite.mockMailer)
}

func (suite *NotificationServiceTestSuite) TestNotifyTransactionAlert_PayloadShape() {
	ctx := context.Background()
	suite.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		if n.UserID != "u1" || n.Type != domain.NotificationTransactionAlert || n.NotificationID == "" {
			return false
		}
		var data map[string]any
		if err := json.Unmarshal(n.Data, &data); err != nil {
			return false
		}
		return data["message"] == "Transaction created: Weekly shop" && data["transaction_id"] == "t1"
	})).Return(nil).Once()

	err := suite.service.NotifyTransactionAlert(ctx, "u1", domain.Transaction{
		TransactionID: "t1",
		Description:   "Weekly shop",
		Amount:        decimal.RequireFromString("25.50"),
		Type:          domain.TransactionTypeExpense,
	}, "created")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyReportReady_SendsMail() {
	ctx := context.Background()
	user := domain.User{UserID: "u1", Name: "Jo", Email: "jo@example.com"}
	suite.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Type == domain.NotificationReportReady && n.UserID == "u1"
	})).Return(nil).Once()
	suite.mockMailer.On("Send", ctx, "jo@example.com", "Your transaction report is ready", mock.MatchedBy(func(body string) bool {
		return len(body) > 0
	})).Return(nil).Once()

	suite.Require().NoError(suite.service.NotifyReportReady(ctx, user, "http://localhost:8080/storage/reports/r.xlsx"))
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyReportReady_MailFailureIgnored() {
	ctx := context.Background()
	user := domain.User{UserID: "u1", Email: "jo@example.com"}
	suite.mockRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()
	suite.mockMailer.On("Send", ctx, "jo@example.com", mock.Anything, mock.Anything).
		Return(errors.New("smtp unreachable")).Once()

	suite.NoError(suite.service.NotifyReportReady(ctx, user, "http://example.com/r.xlsx"))
}

func (suite *NotificationServiceTestSuite) TestNotifyReportReady_NoMailerConfigured() {
	ctx := context.Background()
	service := services.NewNotificationService(suite.mockRepo, nil)
	suite.mockRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).Return(nil).Once()

	suite.NoError(service.NotifyReportReady(ctx, domain.User{UserID: "u1"}, "http://example.com/r.xlsx"))
}

func (suite *NotificationServiceTestSuite) TestMarkNotificationRead_ReloadsRow() {
	ctx := context.Background()
	readAt := time.Now()
	stored := &domain.Notification{NotificationID: "n1", UserID: "u1", ReadAt: &readAt}
	suite.mockRepo.On("MarkNotificationRead", ctx, "u1", "n1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindNotificationByID", ctx, "u1", "n1").Return(stored, nil).Once()

	notification, err := suite.service.MarkNotificationRead(ctx, "u1", "n1")

	suite.Require().NoError(err)
	suite.True(notification.IsRead())
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
