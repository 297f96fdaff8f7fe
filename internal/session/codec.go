// Package session turns the client-held cookie credential into a resolved
// identity. The credential is a JSON pair of provider tokens; it is never
// persisted server-side.
package session

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/identity"
)

// EncodeCredential serializes a token pair into the cookie value.
func EncodeCredential(pair identity.TokenPair) (string, error) {
	raw, err := json.Marshal(pair)
	if err != nil {
		return "", fmt.Errorf("failed to encode session credential: %w", err)
	}
	return string(raw), nil
}

// DecodeCredential parses a raw cookie value into a token pair. Browsers and
// proxies occasionally hand the value back wrapped in quotes, so those are
// stripped before parsing. A credential missing either token is invalid:
// the provider only accepts the pair together.
func DecodeCredential(raw string) (identity.TokenPair, error) {
	trimmed := strings.Trim(strings.TrimSpace(raw), `"'`)
	if trimmed == "" {
		return identity.TokenPair{}, fmt.Errorf("empty session credential: %w", domain.ErrUnauthenticated)
	}

	var pair identity.TokenPair
	if err := json.Unmarshal([]byte(trimmed), &pair); err != nil {
		return identity.TokenPair{}, fmt.Errorf("malformed session credential: %w", domain.ErrUnauthenticated)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return identity.TokenPair{}, fmt.Errorf("session credential missing token: %w", domain.ErrUnauthenticated)
	}

	return pair, nil
}
