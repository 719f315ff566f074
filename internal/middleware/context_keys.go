package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	abilitiesKey = contextKey("abilities")
	tokenIDKey   = contextKey("tokenID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}

// GetTokenIDFromContext retrieves the presented token's ID (jti).
func GetTokenIDFromContext(c *gin.Context) (string, bool) {
	tokenID, ok := c.Request.Context().Value(tokenIDKey).(string)
	return tokenID, ok
}

// GetAbilitiesFromContext retrieves the token's ability snapshot.
func GetAbilitiesFromContext(c *gin.Context) ([]string, bool) {
	abilities, ok := c.Request.Context().Value(abilitiesKey).([]string)
	return abilities, ok
}

// TokenCan reports whether the presented token's snapshot grants the named
// ability. It never re-resolves against live role assignments; a token keeps
// the abilities it was issued with until expiry or logout.
func TokenCan(c *gin.Context, ability string) bool {
	abilities, ok := GetAbilitiesFromContext(c)
	if !ok {
		return false
	}
	for _, a := range abilities {
		if a == ability {
			return true
		}
	}
	return false
}

// withAuthValues stores the authenticated identity in a standard context.
func withAuthValues(ctx context.Context, userID, tokenID string, abilities []string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	ctx = context.WithValue(ctx, tokenIDKey, tokenID)
	return context.WithValue(ctx, abilitiesKey, abilities)
}
