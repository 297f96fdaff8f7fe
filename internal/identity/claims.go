package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClearlyExpired decodes the provider-issued access token without
// verifying its signature and reports whether the exp claim has already
// passed. Signature verification stays with the provider; this only avoids a
// round trip for tokens that cannot possibly be accepted. Opaque or
// malformed tokens are passed through to the provider unchanged.
func tokenClearlyExpired(accessToken string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}
