package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AbilityClaims are the JWT claims carried by an access token. Abilities is
// the snapshot resolved at login; the claims ID (jti) matches the
// access_tokens row so logout can revoke the token server-side.
type AbilityClaims struct {
	Abilities []string `json:"abilities"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a new HS256 JWT embedding the ability snapshot.
func GenerateAccessToken(tokenID, userID string, abilities []string, secret, issuer string, expiresAt time.Time) (string, error) {
	claims := AbilityClaims{
		Abilities: abilities,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken parses a token string, validates its signature and
// standard claims, and returns the ability claims.
func ParseAccessToken(tokenString, secret string) (*AbilityClaims, error) {
	claims := &AbilityClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
