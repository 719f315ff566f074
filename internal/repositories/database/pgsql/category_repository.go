package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `category_id, name, type, created_at, updated_at, deleted_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var category domain.Category
	err := row.Scan(
		&category.CategoryID,
		&category.Name,
		&category.Type,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}
	return &category, nil
}

// isUniqueViolation reports whether the error is a Postgres unique constraint
// failure (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, name, type, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Type,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1 AND deleted_at IS NULL;`
	return scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
}

func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(name) = $1 AND deleted_at IS NULL;`
	return scanCategory(r.Pool.QueryRow(ctx, query, strings.ToLower(name)))
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE deleted_at IS NULL ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories
        SET name = $1, type = $2, updated_at = $3
        WHERE category_id = $4 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		category.Name,
		category.Type,
		category.UpdatedAt,
		category.CategoryID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) MarkCategoryDeleted(ctx context.Context, categoryID string, deletedAt time.Time) error {
	query := `
        UPDATE categories
        SET deleted_at = $1, updated_at = $1
        WHERE category_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, categoryID)
	if err != nil {
		return fmt.Errorf("failed to mark category as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
