package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements the user and role ports.
var (
	_ portsrepo.UserRepository = (*PgxUserRepository)(nil)
	_ portsrepo.RoleRepository = (*PgxUserRepository)(nil)
)

const userColumns = `user_id, name, email, password_hash, avatar, created_at, updated_at, deleted_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, name, email, password_hash, avatar, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Avatar,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	return scanUser(r.Pool.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`
	return scanUser(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET name = $1, email = $2, avatar = $3, updated_at = $4
        WHERE user_id = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.Name,
		user.Email,
		user.Avatar,
		user.UpdatedAt,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	query := `
        UPDATE users
        SET password_hash = $1, updated_at = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkUserDeleted soft-deletes the user and revokes every outstanding access
// token in the same transaction, so a deleted account cannot keep an
// authenticated session alive.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        UPDATE users
        SET deleted_at = $1, updated_at = $1
        WHERE user_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := tx.Exec(ctx, query, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM access_tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to revoke access tokens: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxUserRepository) FindRolesForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	query := `
        SELECT r.role_id, r.name, r.description
        FROM roles r
        JOIN role_user ru ON ru.role_id = r.role_id
        WHERE ru.user_id = $1
        ORDER BY r.name;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles for user: %w", err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.RoleID, &role.Name, &role.Description); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, role)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", rows.Err())
	}
	return roles, nil
}

func (r *PgxUserRepository) FindPermissionsForRole(ctx context.Context, roleID string) ([]domain.Permission, error) {
	query := `
        SELECT p.permission_id, p.name, p.description
        FROM permissions p
        JOIN permission_role pr ON pr.permission_id = p.permission_id
        WHERE pr.role_id = $1
        ORDER BY p.name;
    `
	rows, err := r.Pool.Query(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions for role: %w", err)
	}
	defer rows.Close()

	permissions := []domain.Permission{}
	for rows.Next() {
		var perm domain.Permission
		if err := rows.Scan(&perm.PermissionID, &perm.Name, &perm.Description); err != nil {
			return nil, fmt.Errorf("failed to scan permission row: %w", err)
		}
		permissions = append(permissions, perm)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating permission rows: %w", rows.Err())
	}
	return permissions, nil
}
