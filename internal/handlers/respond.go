package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto HTTP statuses at the boundary.
// Internal errors are logged with detail but answered generically.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConversion):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Currency conversion is currently unavailable"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requireAbility rejects requests whose token snapshot lacks the ability.
func requireAbility(ability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !middleware.TokenCan(c, ability) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden: missing ability " + ability})
			return
		}
		c.Next()
	}
}

// mustUserID pulls the authenticated user ID; the auth middleware guarantees
// it exists on every protected route.
func mustUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
