package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/repository"
)

// profileService implements ProfileService
type profileService struct {
	users   repository.UserRepository
	states  repository.StateRepository
	courses repository.CourseRepository
}

// NewProfileService creates a new profile service
func NewProfileService(
	users repository.UserRepository,
	states repository.StateRepository,
	courses repository.CourseRepository,
) ProfileService {
	return &profileService{
		users:   users,
		states:  states,
		courses: courses,
	}
}

// States lists jurisdiction reference data
func (s *profileService) States(ctx context.Context) ([]domain.State, error) {
	return s.states.List(ctx)
}

// Courses lists course reference data
func (s *profileService) Courses(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

// UpdateState sets the caller's jurisdiction code
func (s *profileService) UpdateState(ctx context.Context, userID, state string) error {
	if state == "" {
		return fmt.Errorf("state is required: %w", domain.ErrValidation)
	}

	if err := s.users.UpdateState(ctx, userID, state); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("profile missing: %w", domain.ErrUnauthenticated)
		}
		return fmt.Errorf("failed to update state: %w", err)
	}
	return nil
}
