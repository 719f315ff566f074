package services

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// LoginResult is what a successful login hands back to the handler: the user,
// the signed token string, and the ability snapshot embedded in that token.
type LoginResult struct {
	User      *domain.User
	Token     string
	Abilities []string
}

// AuthSvcFacade handles credential verification and token lifecycle.
type AuthSvcFacade interface {
	// Login verifies credentials, resolves the caller's abilities from
	// their current role assignments and issues a snapshot token.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Logout revokes the presented token by deleting its server-side row.
	Logout(ctx context.Context, tokenID string) error
	// ResolveAbilities computes the deduplicated union of permission names
	// across the user's roles. Pure read; no caching.
	ResolveAbilities(ctx context.Context, userID string) ([]string, error)
}
