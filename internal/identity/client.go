// Package identity is the client for the external identity provider. All
// credential handling (signup, password grant, session validation) is
// delegated to the provider; this service never stores passwords or issues
// tokens of its own.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrRejected is returned when the provider refuses the supplied
	// credentials (bad password, expired or revoked token, unknown user).
	ErrRejected = errors.New("identity provider rejected credentials")

	// ErrUnavailable is returned when the provider cannot be reached or
	// answers with an unexpected failure.
	ErrUnavailable = errors.New("identity provider unavailable")
)

// User is the provider's view of an account.
type User struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"user_metadata"`
}

// TokenPair is the client-held session credential issued by the provider.
// Both tokens are required; the provider only accepts them together.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Provider defines the identity operations this service consumes.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*TokenPair, *User, error)
	GetUser(ctx context.Context, accessToken string) (*User, error)
}

// Client talks to a GoTrue-compatible identity API over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Provider = (*Client)(nil)

// NewClient creates an identity client. baseURL points at the provider's auth
// API root (e.g. https://project.example.co/auth/v1).
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

type providerError struct {
	Message     string `json:"msg"`
	Description string `json:"error_description"`
}

// SignUp registers a new account with the provider.
func (c *Client) SignUp(ctx context.Context, email, password string) (*User, error) {
	var user User
	err := c.post(ctx, "/signup", "", credentialsPayload{Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("signup response missing user id: %w", ErrUnavailable)
	}
	return &user, nil
}

// SignInWithPassword exchanges email/password for a token pair. A response
// missing either token is treated as a provider failure: the session
// contract requires both.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*TokenPair, *User, error) {
	var resp tokenResponse
	err := c.post(ctx, "/token?grant_type=password", "", credentialsPayload{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, nil, err
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return nil, nil, fmt.Errorf("token response missing token pair: %w", ErrUnavailable)
	}
	return &TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, resp.User, nil
}

// GetUser resolves an access token to the provider's user record. An
// obviously expired token is rejected locally before the round trip; the
// provider remains the authority for everything else.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	if tokenClearlyExpired(accessToken) {
		return nil, fmt.Errorf("access token expired: %w", ErrRejected)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	c.setHeaders(req, accessToken)

	var user User
	if err := c.do(req, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, fmt.Errorf("provider returned no user: %w", ErrRejected)
	}
	return &user, nil
}

func (c *Client) post(ctx context.Context, path, accessToken string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	c.setHeaders(req, accessToken)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.apiKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity request failed: %w", errors.Join(ErrUnavailable, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read identity response: %w", ErrUnavailable)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode identity response: %w", ErrUnavailable)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode >= 400 && resp.StatusCode < 500:
		var perr providerError
		_ = json.Unmarshal(body, &perr)
		msg := perr.Message
		if msg == "" {
			msg = perr.Description
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s: %w", msg, ErrRejected)
	default:
		return fmt.Errorf("identity provider returned %d: %w", resp.StatusCode, ErrUnavailable)
	}
}
