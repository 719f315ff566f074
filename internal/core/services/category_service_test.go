package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/core/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  *services.CategoryService
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	suite.mockRepo.On("FindCategoryByName", ctx, "Subscriptions").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Subscriptions" && c.Type == domain.CategoryTypeExpense && c.CategoryID != ""
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "Subscriptions",
		Type: "expense",
	})

	suite.Require().NoError(err)
	suite.Equal("Subscriptions", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	existing := &domain.Category{CategoryID: "cat-1", Name: "Groceries"}
	suite.mockRepo.On("FindCategoryByName", ctx, "Groceries").Return(existing, nil).Once()

	category, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name: "Groceries",
		Type: "expense",
	})

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_PartialFields() {
	ctx := context.Background()
	existing := &domain.Category{CategoryID: "cat-1", Name: "Groceries", Type: domain.CategoryTypeExpense}
	newName := "Food"
	suite.mockRepo.On("FindCategoryByID", ctx, "cat-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Food" && c.Type == domain.CategoryTypeExpense
	})).Return(nil).Once()

	category, err := suite.service.UpdateCategory(ctx, "cat-1", dto.UpdateCategoryRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("Food", category.Name)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Missing() {
	ctx := context.Background()
	suite.mockRepo.On("MarkCategoryDeleted", ctx, "cat-x", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, "cat-x")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
