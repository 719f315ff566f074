package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/dto"
)

// userHandler handles profile requests for the authenticated user.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
		profile.PUT("/password", h.changePassword)
		profile.DELETE("", h.deleteProfile)
	}
}

// getProfile godoc
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *userHandler) getProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateProfile godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change own password
// @Tags profile
// @Accept json
// @Produce json
// @Param password body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/password [put]
func (h *userHandler) changePassword(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// deleteProfile godoc
// @Summary Delete own account
// @Description Soft-deletes the account. Existing tokens stop resolving a user.
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile [delete]
func (h *userHandler) deleteProfile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
