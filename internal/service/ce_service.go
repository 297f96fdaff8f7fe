package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/internal/repository"
)

// ceService implements CEService
type ceService struct {
	requirements repository.RequirementRepository
	records      repository.RecordRepository
	now          func() time.Time
}

// NewCEService creates a CE service. now is injected so the zero-record
// renewal projection is deterministic under test.
func NewCEService(
	requirements repository.RequirementRepository,
	records repository.RecordRepository,
	now func() time.Time,
) CEService {
	return &ceService{
		requirements: requirements,
		records:      records,
		now:          now,
	}
}

// Status computes the caller's renewal status against the singleton policy.
// A missing policy is a reportable state of its own and is never replaced
// with zero-valued defaults.
func (s *ceService) Status(ctx context.Context, userID string) (*domain.CEStatus, error) {
	req, err := s.requirements.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("no renewal policy: %w", domain.ErrRequirementMissing)
		}
		return nil, fmt.Errorf("failed to load requirement: %w", err)
	}

	records, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	status := domain.ComputeStatus(*req, records, s.now())
	return &status, nil
}

// CreateRecord validates and persists a single completion record, tagged
// with the resolved caller. Duplicate submissions are intentionally not
// deduplicated; each insert stands alone.
func (s *ceService) CreateRecord(ctx context.Context, userID string, input CreateRecordInput) (*domain.CERecord, error) {
	if input.HoursEarned <= 0 {
		return nil, fmt.Errorf("hours_earned must be positive, got %d: %w", input.HoursEarned, domain.ErrValidation)
	}
	if input.CourseID == "" {
		return nil, fmt.Errorf("course_id is required: %w", domain.ErrValidation)
	}
	if input.DateCompleted.IsZero() {
		return nil, fmt.Errorf("date_completed is required: %w", domain.ErrValidation)
	}

	record := &domain.CERecord{
		UserID:        userID,
		CourseID:      input.CourseID,
		DateCompleted: input.DateCompleted,
		HoursEarned:   input.HoursEarned,
		Notes:         input.Notes,
	}

	// Referential integrity is the store's job; a violation (unknown course)
	// propagates as a persistence failure, not a validation one.
	if err := s.records.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist record: %w", err)
	}

	return record, nil
}

// ListRecords returns the caller's records.
func (s *ceService) ListRecords(ctx context.Context, userID string) ([]domain.CERecord, error) {
	records, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}
