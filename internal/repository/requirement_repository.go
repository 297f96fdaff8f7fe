package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/pkg/database"
)

// requirementRepository implements RequirementRepository interface
type requirementRepository struct {
	db *database.Postgres
}

// NewRequirementRepository creates a new CE requirement repository
func NewRequirementRepository(db *database.Postgres) RequirementRepository {
	return &requirementRepository{db: db}
}

// Get returns the singleton renewal policy. Zero rows is a distinct state
// and surfaces as ErrNotFound; callers must not default it away.
func (r *requirementRepository) Get(ctx context.Context) (*domain.CERequirement, error) {
	query := `
		SELECT id, required_hours, renewal_interval_days
		FROM ce_requirements
		LIMIT 1
	`

	req := &domain.CERequirement{}
	err := r.db.DB.QueryRowContext(ctx, query).Scan(
		&req.ID,
		&req.RequiredHours,
		&req.RenewalIntervalDays,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ce requirement not configured: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ce requirement: %w", err)
	}

	return req, nil
}
