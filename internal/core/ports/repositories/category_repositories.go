package repositories

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*domain.Category, error)
	FindCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	MarkCategoryDeleted(ctx context.Context, categoryID string, deletedAt time.Time) error
}
