package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dmorgachev/ce-tracker/pkg/database"
)

// RevocationList records logged-out access tokens in Redis. The identity
// provider keeps a token valid until it expires, so logout has to be
// enforced here: a revoked token stays listed for the remaining cookie
// lifetime and is refused during session resolution.
type RevocationList struct {
	redis *database.Redis
}

// NewRevocationList creates a revocation list backed by Redis.
func NewRevocationList(redis *database.Redis) *RevocationList {
	return &RevocationList{redis: redis}
}

// Revoke marks an access token as logged out for the given lifetime.
func (l *RevocationList) Revoke(ctx context.Context, accessToken string, lifetime time.Duration) error {
	err := l.redis.Client.Set(ctx, revocationKey(accessToken), "1", lifetime).Err()
	if err != nil {
		return fmt.Errorf("failed to revoke session token: %w", err)
	}
	return nil
}

// IsRevoked reports whether an access token has been logged out.
func (l *RevocationList) IsRevoked(ctx context.Context, accessToken string) (bool, error) {
	exists, err := l.redis.Client.Exists(ctx, revocationKey(accessToken)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}
	return exists > 0, nil
}

// Tokens are hashed before use as keys so raw credentials never land in Redis.
func revocationKey(accessToken string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return "revoked:session:" + hex.EncodeToString(sum[:])
}
