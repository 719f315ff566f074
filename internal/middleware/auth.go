package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	"github.com/pennywise-app/pennywise_backend/internal/utils"
)

// TokenChecker looks up an issued access token by its ID. Used to reject
// tokens that were revoked by logout before their JWT expiry.
type TokenChecker interface {
	FindAccessTokenByID(ctx context.Context, tokenID string) (*domain.AccessToken, error)
}

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens. The signature and expiry come from the JWT itself; the server-side
// row is checked so logged-out tokens stop working immediately.
func AuthMiddleware(jwtSecret string, tokens TokenChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAccessToken(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" || claims.ID == "" {
			logger.Error("Subject or token ID missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Revocation check: logout deletes the row.
		stored, err := tokens.FindAccessTokenByID(c.Request.Context(), claims.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
				return
			}
			logger.Error("Failed to verify token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify token"})
			return
		}
		if stored.IsExpired() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			return
		}

		ctx := withAuthValues(c.Request.Context(), claims.Subject, claims.ID, claims.Abilities)

		enrichedLogger := logger.With(slog.String("user_id", claims.Subject))
		ctx = WithLogger(ctx, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
