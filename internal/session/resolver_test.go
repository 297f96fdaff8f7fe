package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/identity"
	"github.com/dmorgachev/ce-tracker/internal/repository"
)

type stubProvider struct {
	user *identity.User
	err  error
}

func (s *stubProvider) SignUp(ctx context.Context, email, password string) (*identity.User, error) {
	return nil, nil
}

func (s *stubProvider) SignInWithPassword(ctx context.Context, email, password string) (*identity.TokenPair, *identity.User, error) {
	return nil, nil, nil
}

func (s *stubProvider) GetUser(ctx context.Context, accessToken string) (*identity.User, error) {
	return s.user, s.err
}

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) UpdateState(ctx context.Context, userID, state string) error { return nil }

func (s *stubUserRepo) SetPro(ctx context.Context, userID string, isPro bool) error { return nil }

type stubRevocations struct {
	revoked map[string]bool
}

func (s *stubRevocations) IsRevoked(ctx context.Context, accessToken string) (bool, error) {
	return s.revoked[accessToken], nil
}

const validCredential = `{"access_token":"at","refresh_token":"rt"}`

func TestResolve_Success(t *testing.T) {
	users := newStubUserRepo()
	users.Create(context.Background(), &domain.User{ID: "user-1", Email: "a@b.co", State: "CA", IsPro: true})

	resolver := NewResolver(
		&stubProvider{user: &identity.User{ID: "user-1", Email: "a@b.co"}},
		users,
		&stubRevocations{revoked: map[string]bool{}},
	)

	ident, err := resolver.Resolve(context.Background(), validCredential)
	require.NoError(t, err)

	assert.Equal(t, "user-1", ident.ID)
	assert.Equal(t, "a@b.co", ident.Email)
	assert.Equal(t, "CA", ident.State)
	assert.True(t, ident.IsPro)
}

func TestResolve_MissingRefreshTokenRejected(t *testing.T) {
	// Even a provider that would accept the access token alone never gets
	// asked: the credential contract requires both tokens.
	resolver := NewResolver(
		&stubProvider{user: &identity.User{ID: "user-1", Email: "a@b.co"}},
		newStubUserRepo(),
		&stubRevocations{revoked: map[string]bool{}},
	)

	_, err := resolver.Resolve(context.Background(), `{"access_token":"at"}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResolve_RevokedSession(t *testing.T) {
	resolver := NewResolver(
		&stubProvider{user: &identity.User{ID: "user-1", Email: "a@b.co"}},
		newStubUserRepo(),
		&stubRevocations{revoked: map[string]bool{"at": true}},
	)

	_, err := resolver.Resolve(context.Background(), validCredential)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResolve_ProviderRejection(t *testing.T) {
	resolver := NewResolver(
		&stubProvider{err: identity.ErrRejected},
		newStubUserRepo(),
		&stubRevocations{revoked: map[string]bool{}},
	)

	_, err := resolver.Resolve(context.Background(), validCredential)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResolve_ProviderOutageIsUpstream(t *testing.T) {
	resolver := NewResolver(
		&stubProvider{err: identity.ErrUnavailable},
		newStubUserRepo(),
		&stubRevocations{revoked: map[string]bool{}},
	)

	_, err := resolver.Resolve(context.Background(), validCredential)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.NotErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestResolve_CreatesMissingProfileRow(t *testing.T) {
	users := newStubUserRepo()
	resolver := NewResolver(
		&stubProvider{user: &identity.User{ID: "user-9", Email: "new@b.co"}},
		users,
		&stubRevocations{revoked: map[string]bool{}},
	)

	ident, err := resolver.Resolve(context.Background(), validCredential)
	require.NoError(t, err)

	assert.Equal(t, "user-9", ident.ID)
	assert.False(t, ident.IsPro)

	created, err := users.GetByID(context.Background(), "user-9")
	require.NoError(t, err)
	assert.Equal(t, "new@b.co", created.Email)
}
