package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/identity"
	"github.com/dmorgachev/ce-tracker/internal/repository"
)

// In-memory fakes for the repository and provider interfaces.

type fakeRequirementRepo struct {
	requirement *domain.CERequirement
	err         error
}

func (f *fakeRequirementRepo) Get(ctx context.Context) (*domain.CERequirement, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.requirement == nil {
		return nil, fmt.Errorf("no row: %w", repository.ErrNotFound)
	}
	return f.requirement, nil
}

type fakeRecordRepo struct {
	records []domain.CERecord
	err     error
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *domain.CERecord) error {
	if f.err != nil {
		return f.err
	}
	if record.ID == "" {
		record.ID = fmt.Sprintf("record-%d", len(f.records)+1)
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRecordRepo) ListByUser(ctx context.Context, userID string) ([]domain.CERecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.CERecord, 0)
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateState(ctx context.Context, userID, state string) error {
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.State = state
	return nil
}

func (f *fakeUserRepo) SetPro(ctx context.Context, userID string, isPro bool) error {
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.IsPro = isPro
	return nil
}

type fakeProvider struct {
	signUpUser  *identity.User
	signUpErr   error
	signInPair  *identity.TokenPair
	signInUser  *identity.User
	signInErr   error
	getUserResp *identity.User
	getUserErr  error
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string) (*identity.User, error) {
	return f.signUpUser, f.signUpErr
}

func (f *fakeProvider) SignInWithPassword(ctx context.Context, email, password string) (*identity.TokenPair, *identity.User, error) {
	return f.signInPair, f.signInUser, f.signInErr
}

func (f *fakeProvider) GetUser(ctx context.Context, accessToken string) (*identity.User, error) {
	return f.getUserResp, f.getUserErr
}

type fakeRevoker struct {
	revoked map[string]time.Duration
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]time.Duration)}
}

func (f *fakeRevoker) Revoke(ctx context.Context, accessToken string, lifetime time.Duration) error {
	f.revoked[accessToken] = lifetime
	return nil
}
