package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/identity"
)

const testSessionMaxAge = 7 * 24 * time.Hour

func TestSignUp_CreatesLocalProfile(t *testing.T) {
	users := newFakeUserRepo()
	provider := &fakeProvider{signUpUser: &identity.User{ID: "user-1", Email: "a@b.co"}}
	svc := NewAuthService(provider, users, newFakeRevoker(), testSessionMaxAge)

	err := svc.SignUp(context.Background(), "  A@B.co ", "password123")
	require.NoError(t, err)

	user, err := users.GetByID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", user.Email)
	assert.False(t, user.IsPro)
	assert.Empty(t, user.State)
}

func TestSignUp_ProviderRejectionIsValidation(t *testing.T) {
	provider := &fakeProvider{signUpErr: identity.ErrRejected}
	svc := NewAuthService(provider, newFakeUserRepo(), newFakeRevoker(), testSessionMaxAge)

	err := svc.SignUp(context.Background(), "a@b.co", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSignUp_ProviderOutageIsUpstream(t *testing.T) {
	provider := &fakeProvider{signUpErr: identity.ErrUnavailable}
	svc := NewAuthService(provider, newFakeUserRepo(), newFakeRevoker(), testSessionMaxAge)

	err := svc.SignUp(context.Background(), "a@b.co", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestSignIn_ReturnsTokenPair(t *testing.T) {
	users := newFakeUserRepo()
	provider := &fakeProvider{
		signInPair: &identity.TokenPair{AccessToken: "at", RefreshToken: "rt"},
		signInUser: &identity.User{ID: "user-1", Email: "a@b.co"},
	}
	svc := NewAuthService(provider, users, newFakeRevoker(), testSessionMaxAge)

	pair, err := svc.SignIn(context.Background(), "a@b.co", "password123")
	require.NoError(t, err)
	assert.Equal(t, "at", pair.AccessToken)
	assert.Equal(t, "rt", pair.RefreshToken)

	// First sign-in backfills the profile row.
	_, err = users.GetByID(context.Background(), "user-1")
	assert.NoError(t, err)
}

func TestSignIn_BadCredentials(t *testing.T) {
	provider := &fakeProvider{signInErr: identity.ErrRejected}
	svc := NewAuthService(provider, newFakeUserRepo(), newFakeRevoker(), testSessionMaxAge)

	_, err := svc.SignIn(context.Background(), "a@b.co", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestSignOut_RevokesForSessionLifetime(t *testing.T) {
	revoker := newFakeRevoker()
	svc := NewAuthService(&fakeProvider{}, newFakeUserRepo(), revoker, testSessionMaxAge)

	err := svc.SignOut(context.Background(), "access-token")
	require.NoError(t, err)

	assert.Equal(t, testSessionMaxAge, revoker.revoked["access-token"])
}

func TestSignOut_NoTokenIsNoop(t *testing.T) {
	revoker := newFakeRevoker()
	svc := NewAuthService(&fakeProvider{}, newFakeUserRepo(), revoker, testSessionMaxAge)

	require.NoError(t, svc.SignOut(context.Background(), ""))
	assert.Empty(t, revoker.revoked)
}
