package service

import (
	"context"
	"time"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/identity"
)

// AuthService orchestrates the identity-provider flows and the local
// profile rows that accompany them.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) (*identity.TokenPair, error)
	SignOut(ctx context.Context, accessToken string) error
}

// CreateRecordInput carries a validated-at-the-edge record submission. The
// owning user is always the resolved caller, never client input.
type CreateRecordInput struct {
	CourseID      string
	DateCompleted time.Time
	HoursEarned   int
	Notes         *string
}

// CEService computes renewal status and ingests completion records.
type CEService interface {
	Status(ctx context.Context, userID string) (*domain.CEStatus, error)
	CreateRecord(ctx context.Context, userID string, input CreateRecordInput) (*domain.CERecord, error)
	ListRecords(ctx context.Context, userID string) ([]domain.CERecord, error)
}

// ProfileService serves reference data and profile settings.
type ProfileService interface {
	States(ctx context.Context) ([]domain.State, error)
	Courses(ctx context.Context) ([]domain.Course, error)
	UpdateState(ctx context.Context, userID, state string) error
}

// BillingService applies payment events to local profiles.
type BillingService interface {
	HandleCheckoutCompleted(ctx context.Context, customerEmail string) error
}
