package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// UserSvcFacade handles profile operations for the authenticated user.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	DeleteUser(ctx context.Context, userID string) error
}
