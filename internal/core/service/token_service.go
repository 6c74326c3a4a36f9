package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/usermgmt/user-management-api/internal/core/domain"
	"github.com/usermgmt/user-management-api/internal/core/ports"
)

// TokenService mints and verifies HS256-signed bearer tokens. The signing
// secret is process-wide and read-only after startup; rotating it invalidates
// every outstanding token, which is an accepted operational tradeoff.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
	denylist ports.TokenDenylist
	now      func() time.Time
}

// NewTokenService returns a TokenService. denylist may be nil, in which case
// no revocation check is performed — possession of a valid, unexpired token
// is sufficient proof of identity until natural expiry.
func NewTokenService(secret string, tokenTTL time.Duration, denylist ports.TokenDenylist) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		denylist: denylist,
		now:      time.Now,
	}
}

// Issue mints a token binding the user's identity for the configured TTL.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the token's claims.
// Any failure collapses to domain.ErrUnauthenticated so callers cannot
// distinguish a forged token from an expired one.
func (s *TokenService) Verify(ctx context.Context, token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrUnauthenticated
	}
	roleStr, _ := claims["role"].(string)
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	jti, _ := claims["jti"].(string)

	if s.denylist != nil && jti != "" {
		revoked, err := s.denylist.IsRevoked(ctx, jti)
		if err != nil {
			return nil, fmt.Errorf("denylist check: %w", err)
		}
		if revoked {
			return nil, domain.ErrUnauthenticated
		}
	}

	return &ports.TokenClaims{UserID: sub, Role: role, TokenID: jti}, nil
}
