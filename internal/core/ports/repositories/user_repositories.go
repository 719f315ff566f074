package repositories

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}

// RoleRepository exposes the role/permission assignments the ability
// resolver flattens. Roles and permissions are seeded data; the application
// only reads them.
type RoleRepository interface {
	FindRolesForUser(ctx context.Context, userID string) ([]domain.Role, error)
	FindPermissionsForRole(ctx context.Context, roleID string) ([]domain.Permission, error)
}
