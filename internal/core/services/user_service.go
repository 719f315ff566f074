package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
	"github.com/pennywise-app/pennywise_backend/internal/utils"
)

type UserService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user for update: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.LogInfo(ctx, "user profile updated", slog.String("user_id", userID))
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for password change: %w", err)
	}

	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	s.LogInfo(ctx, "user password changed", slog.String("user_id", userID))
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "user deleted", slog.String("user_id", userID))
	return nil
}
