package repositories

import (
	"context"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

// AccessTokenRepository stores issued login tokens. Deleting a row revokes
// the token; the ability snapshot inside a row is immutable after issuance.
type AccessTokenRepository interface {
	SaveAccessToken(ctx context.Context, token domain.AccessToken) error
	FindAccessTokenByID(ctx context.Context, tokenID string) (*domain.AccessToken, error)
	DeleteAccessToken(ctx context.Context, tokenID string) error
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}
