package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist is a Redis-backed token revocation store. The token issuer stays
// stateless: revocation is an external mark consulted only at verification.
// Key format: denylist:<token_id>
type Denylist struct {
	client *redis.Client
}

// NewDenylist creates a Denylist wrapping the given Redis client.
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

// IsRevoked reports whether the token id has been marked revoked.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

// Revoke marks a token id as revoked. The entry needs to live only as long
// as the token itself, so ttl should be the token's remaining lifetime.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return d.client.Set(ctx, d.key(tokenID), "1", ttl).Err()
}

func (d *Denylist) key(tokenID string) string {
	return "denylist:" + tokenID
}
