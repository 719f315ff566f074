package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	// Name uniqueness is case-insensitive; check first for a clean error,
	// the unique index still backstops races.
	if _, err := s.categoryRepo.FindCategoryByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, req.Name)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		Type:       domain.CategoryType(req.Type),
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		category.Type = domain.CategoryType(*req.Type)
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.LogInfo(ctx, "category updated", slog.String("category_id", categoryID))
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.MarkCategoryDeleted(ctx, categoryID, time.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.LogInfo(ctx, "category deleted", slog.String("category_id", categoryID))
	return nil
}
