package ports

import (
	"context"
	"time"

	"github.com/usermgmt/user-management-api/internal/core/domain"
)

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	UserID  string
	Role    domain.Role
	TokenID string
}

// TokenService mints and validates stateless bearer tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify fails with domain.ErrUnauthenticated on bad signature,
	// malformed token, or expiry.
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenDenylist abstracts an external revocation store consulted at
// verification time. The issuer itself stays stateless.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}
