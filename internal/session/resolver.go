package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/identity"
	"github.com/dmorgachev/ce-tracker/internal/repository"
)

// RevocationChecker reports whether an access token has been logged out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, accessToken string) (bool, error)
}

// Resolver validates a raw session credential and resolves it to an
// identity: the provider confirms the token pair, the local users table
// supplies the profile flags (jurisdiction state, is_pro).
type Resolver struct {
	provider    identity.Provider
	users       repository.UserRepository
	revocations RevocationChecker
}

// NewResolver creates a session resolver.
func NewResolver(provider identity.Provider, users repository.UserRepository, revocations RevocationChecker) *Resolver {
	return &Resolver{
		provider:    provider,
		users:       users,
		revocations: revocations,
	}
}

// Resolve turns a raw cookie value into an Identity. Every failure mode of
// the credential itself (absent, malformed, missing a token, revoked,
// rejected by the provider) surfaces as domain.ErrUnauthenticated; provider
// outages surface as domain.ErrUpstream.
func (r *Resolver) Resolve(ctx context.Context, rawCredential string) (*domain.Identity, error) {
	pair, err := DecodeCredential(rawCredential)
	if err != nil {
		return nil, err
	}

	revoked, err := r.revocations.IsRevoked(ctx, pair.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("revocation check failed: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("session revoked: %w", domain.ErrUnauthenticated)
	}

	providerUser, err := r.provider.GetUser(ctx, pair.AccessToken)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return nil, fmt.Errorf("session rejected by provider: %w", domain.ErrUnauthenticated)
		}
		return nil, fmt.Errorf("session resolution failed: %w", domain.ErrUpstream)
	}

	user, err := r.loadOrCreateProfile(ctx, providerUser)
	if err != nil {
		return nil, err
	}

	return &domain.Identity{
		ID:    user.ID,
		Email: user.Email,
		State: user.State,
		IsPro: user.IsPro,
	}, nil
}

// loadOrCreateProfile fetches the local profile row, creating it on first
// contact for accounts that signed up before the profile table had a row for
// them.
func (r *Resolver) loadOrCreateProfile(ctx context.Context, providerUser *identity.User) (*domain.User, error) {
	user, err := r.users.GetByID(ctx, providerUser.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	user = &domain.User{
		ID:    providerUser.ID,
		Email: providerUser.Email,
	}
	if err := r.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Raced with another request creating the same profile.
			return r.users.GetByID(ctx, providerUser.ID)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return user, nil
}
