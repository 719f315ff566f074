package dto

import (
	"time"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// UserResponse is the public shape of a user.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse maps a domain user to its response shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
	}
}

// UpdateProfileRequest updates name and/or email. Nil fields are untouched.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

// ChangePasswordRequest verifies the current password before setting a new one.
type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password" binding:"required"`
	NewPassword             string `json:"new_password" binding:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" binding:"required,eqfield=NewPassword"`
}
