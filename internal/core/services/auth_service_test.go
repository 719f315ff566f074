package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
	"github.com/pennywise-app/pennywise_backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUsers  *MockUserRepository
	mockRoles  *MockRoleRepository
	mockTokens *MockAccessTokenRepository
	service    *services.AuthService
	cfg        *config.Config
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUsers = new(MockUserRepository)
	suite.mockRoles = new(MockRoleRepository)
	suite.mockTokens = new(MockAccessTokenRepository)
	suite.cfg = &config.Config{
		JWTSecret:           "test-secret",
		JWTIssuer:           "pennywise-test",
		TokenExpiryDuration: 24 * time.Hour,
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockUsers, suite.mockRoles, suite.mockTokens)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)

	user := &domain.User{UserID: "u1", Email: "jo@example.com", PasswordHash: hash}
	suite.mockUsers.On("FindUserByEmail", ctx, "jo@example.com").Return(user, nil).Once()
	suite.mockRoles.On("FindRolesForUser", ctx, "u1").Return([]domain.Role{{RoleID: "r1"}}, nil).Once()
	suite.mockRoles.On("FindPermissionsForRole", ctx, "r1").Return([]domain.Permission{
		{Name: domain.AbilityViewTransaction},
		{Name: domain.AbilityCreateTransaction},
	}, nil).Once()
	suite.mockTokens.On("SaveAccessToken", ctx, mock.MatchedBy(func(t domain.AccessToken) bool {
		return t.UserID == "u1" && len(t.Abilities) == 2 && t.TokenID != ""
	})).Return(nil).Once()

	result, err := suite.service.Login(ctx, "jo@example.com", "secret123")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.Token)
	// Abilities come back sorted and deduplicated.
	suite.Equal([]string{domain.AbilityCreateTransaction, domain.AbilityViewTransaction}, result.Abilities)

	// The signed token carries the same snapshot and a jti matching the row.
	claims, err := utils.ParseAccessToken(result.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("u1", claims.Subject)
	suite.Equal(result.Abilities, claims.Abilities)
	suite.NotEmpty(claims.ID)

	suite.mockUsers.AssertExpectations(suite.T())
	suite.mockRoles.AssertExpectations(suite.T())
	suite.mockTokens.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_OverlappingRolesDeduplicated() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)

	user := &domain.User{UserID: "u1", Email: "jo@example.com", PasswordHash: hash}
	suite.mockUsers.On("FindUserByEmail", ctx, "jo@example.com").Return(user, nil).Once()
	suite.mockRoles.On("FindRolesForUser", ctx, "u1").Return([]domain.Role{{RoleID: "r1"}, {RoleID: "r2"}}, nil).Once()
	suite.mockRoles.On("FindPermissionsForRole", ctx, "r1").Return([]domain.Permission{
		{Name: domain.AbilityViewTransaction},
	}, nil).Once()
	suite.mockRoles.On("FindPermissionsForRole", ctx, "r2").Return([]domain.Permission{
		{Name: domain.AbilityViewTransaction},
		{Name: domain.AbilityViewDashboard},
	}, nil).Once()
	suite.mockTokens.On("SaveAccessToken", ctx, mock.AnythingOfType("domain.AccessToken")).Return(nil).Once()

	result, err := suite.service.Login(ctx, "jo@example.com", "secret123")

	suite.Require().NoError(err)
	suite.Equal([]string{domain.AbilityViewDashboard, domain.AbilityViewTransaction}, result.Abilities)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret123")
	suite.Require().NoError(err)

	user := &domain.User{UserID: "u1", Email: "jo@example.com", PasswordHash: hash}
	suite.mockUsers.On("FindUserByEmail", ctx, "jo@example.com").Return(user, nil).Once()

	result, err := suite.service.Login(ctx, "jo@example.com", "wrong")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockTokens.AssertNotCalled(suite.T(), "SaveAccessToken", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailSameError() {
	ctx := context.Background()
	suite.mockUsers.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.Login(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogout_Idempotent() {
	ctx := context.Background()
	suite.mockTokens.On("DeleteAccessToken", ctx, "tok-1").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.Logout(ctx, "tok-1"))
	suite.mockTokens.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestResolveAbilities_NoRoles() {
	ctx := context.Background()
	suite.mockRoles.On("FindRolesForUser", ctx, "u1").Return([]domain.Role{}, nil).Once()

	abilities, err := suite.service.ResolveAbilities(ctx, "u1")

	suite.Require().NoError(err)
	suite.Empty(abilities)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
