package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
)

type PgxAccessTokenRepository struct {
	BaseRepository
}

func newPgxAccessTokenRepository(db *pgxpool.Pool) *PgxAccessTokenRepository {
	return &PgxAccessTokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AccessTokenRepository = (*PgxAccessTokenRepository)(nil)

func (r *PgxAccessTokenRepository) SaveAccessToken(ctx context.Context, token domain.AccessToken) error {
	query := `
        INSERT INTO access_tokens (token_id, user_id, abilities, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		token.TokenID,
		token.UserID,
		token.Abilities,
		token.ExpiresAt,
		token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}
	return nil
}

func (r *PgxAccessTokenRepository) FindAccessTokenByID(ctx context.Context, tokenID string) (*domain.AccessToken, error) {
	query := `
        SELECT token_id, user_id, abilities, expires_at, created_at
        FROM access_tokens
        WHERE token_id = $1;
    `
	var token domain.AccessToken
	err := r.Pool.QueryRow(ctx, query, tokenID).Scan(
		&token.TokenID,
		&token.UserID,
		&token.Abilities,
		&token.ExpiresAt,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find access token: %w", err)
	}
	return &token, nil
}

func (r *PgxAccessTokenRepository) DeleteAccessToken(ctx context.Context, tokenID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM access_tokens WHERE token_id = $1;`, tokenID)
	if err != nil {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAccessTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM access_tokens WHERE expires_at < NOW();`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
