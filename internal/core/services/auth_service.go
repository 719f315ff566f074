package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pennywise-app/pennywise_backend/internal/apperrors"
	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywise-app/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywise-app/pennywise_backend/internal/core/ports/services"
	"github.com/pennywise-app/pennywise_backend/internal/platform/config"
	"github.com/pennywise-app/pennywise_backend/internal/utils"
)

// AuthService issues and revokes ability snapshot tokens. Abilities are
// resolved from role assignments once at login and frozen into the token;
// role changes take effect on the next login, not mid-session.
type AuthService struct {
	BaseService
	userRepo  portsrepo.UserRepository
	roleRepo  portsrepo.RoleRepository
	tokenRepo portsrepo.AccessTokenRepository
	cfg       *config.Config
}

func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepository, roleRepo portsrepo.RoleRepository, tokenRepo portsrepo.AccessTokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		tokenRepo: tokenRepo,
		cfg:       cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

func (s *AuthService) Login(ctx context.Context, email, password string) (*portssvc.LoginResult, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same response as a bad password so the endpoint does not
			// disclose which emails exist.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	abilities, err := s.ResolveAbilities(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	token := domain.AccessToken{
		TokenID:   uuid.NewString(),
		UserID:    user.UserID,
		Abilities: abilities,
		ExpiresAt: now.Add(s.cfg.TokenExpiryDuration),
		CreatedAt: now,
	}

	signed, err := utils.GenerateAccessToken(token.TokenID, user.UserID, abilities, s.cfg.JWTSecret, s.cfg.JWTIssuer, token.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	if err := s.tokenRepo.SaveAccessToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist access token: %w", err)
	}

	s.LogInfo(ctx, "user logged in",
		slog.String("user_id", user.UserID),
		slog.Int("ability_count", len(abilities)))

	return &portssvc.LoginResult{
		User:      user,
		Token:     signed,
		Abilities: abilities,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if err := s.tokenRepo.DeleteAccessToken(ctx, tokenID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Already revoked; logout is idempotent.
			return nil
		}
		return fmt.Errorf("failed to revoke access token: %w", err)
	}
	s.LogInfo(ctx, "access token revoked", slog.String("token_id", tokenID))
	return nil
}

// ResolveAbilities flattens roles into a sorted, deduplicated list of
// permission names. Users with overlapping roles see each ability once.
func (s *AuthService) ResolveAbilities(ctx context.Context, userID string) ([]string, error) {
	roles, err := s.roleRepo.FindRolesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles for user: %w", err)
	}

	seen := map[string]struct{}{}
	for _, role := range roles {
		permissions, err := s.roleRepo.FindPermissionsForRole(ctx, role.RoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to load permissions for role %s: %w", role.RoleID, err)
		}
		for _, perm := range permissions {
			seen[perm.Name] = struct{}{}
		}
	}

	abilities := make([]string, 0, len(seen))
	for name := range seen {
		abilities = append(abilities, name)
	}
	sort.Strings(abilities)
	return abilities, nil
}
