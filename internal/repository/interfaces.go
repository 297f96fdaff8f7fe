package repository

import (
	"context"

	"github.com/dmorgachev/ce-tracker/internal/domain"
)

// UserRepository defines methods for local user profile rows
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateState(ctx context.Context, userID, state string) error
	SetPro(ctx context.Context, userID string, isPro bool) error
}

// RecordRepository defines methods for CE completion records. Records are
// insert-only; there is no update or delete.
type RecordRepository interface {
	Create(ctx context.Context, record *domain.CERecord) error
	ListByUser(ctx context.Context, userID string) ([]domain.CERecord, error)
}

// RequirementRepository reads the singleton CE renewal policy
type RequirementRepository interface {
	Get(ctx context.Context) (*domain.CERequirement, error)
}

// CourseRepository reads course reference data
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
}

// StateRepository reads jurisdiction reference data
type StateRepository interface {
	List(ctx context.Context) ([]domain.State, error)
}
