package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/identity"
	"github.com/dmorgachev/ce-tracker/internal/repository"
)

// SessionRevoker marks access tokens as logged out.
type SessionRevoker interface {
	Revoke(ctx context.Context, accessToken string, lifetime time.Duration) error
}

// authService implements AuthService
type authService struct {
	provider      identity.Provider
	users         repository.UserRepository
	revocations   SessionRevoker
	sessionMaxAge time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	provider identity.Provider,
	users repository.UserRepository,
	revocations SessionRevoker,
	sessionMaxAge time.Duration,
) AuthService {
	return &authService{
		provider:      provider,
		users:         users,
		revocations:   revocations,
		sessionMaxAge: sessionMaxAge,
	}
}

// SignUp registers the account with the identity provider and seeds the
// local profile row (default state, is_pro false).
func (s *authService) SignUp(ctx context.Context, email, password string) error {
	email = sanitizeEmail(email)

	providerUser, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return fmt.Errorf("signup rejected: %w", domain.ErrValidation)
		}
		return fmt.Errorf("signup failed: %w", domain.ErrUpstream)
	}

	user := &domain.User{
		ID:    providerUser.ID,
		Email: providerUser.Email,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Profile already exists from an earlier attempt; signup stands.
			return nil
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// SignIn exchanges credentials for the provider token pair and makes sure a
// local profile row exists for the account.
func (s *authService) SignIn(ctx context.Context, email, password string) (*identity.TokenPair, error) {
	email = sanitizeEmail(email)

	pair, providerUser, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return nil, fmt.Errorf("invalid email or password: %w", domain.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("sign-in failed: %w", domain.ErrUpstream)
	}

	if providerUser != nil {
		if _, err := s.users.GetByID(ctx, providerUser.ID); errors.Is(err, repository.ErrNotFound) {
			createErr := s.users.Create(ctx, &domain.User{ID: providerUser.ID, Email: providerUser.Email})
			if createErr != nil && !errors.Is(createErr, repository.ErrDuplicateEmail) {
				return nil, fmt.Errorf("failed to create profile: %w", createErr)
			}
		}
	}

	return pair, nil
}

// SignOut revokes the access token locally for the remaining cookie
// lifetime. The provider keeps its tokens valid until expiry, so this list
// is what makes logout stick.
func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	if err := s.revocations.Revoke(ctx, accessToken, s.sessionMaxAge); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
