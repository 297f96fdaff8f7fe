package repository

import (
	"context"
	"fmt"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/pkg/database"
)

// stateRepository implements StateRepository interface
type stateRepository struct {
	db *database.Postgres
}

// NewStateRepository creates a new jurisdiction state repository
func NewStateRepository(db *database.Postgres) StateRepository {
	return &stateRepository{db: db}
}

// List returns all jurisdiction codes
func (r *stateRepository) List(ctx context.Context) ([]domain.State, error) {
	query := `
		SELECT code, name
		FROM states
		ORDER BY name
	`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	defer rows.Close()

	states := make([]domain.State, 0)
	for rows.Next() {
		var state domain.State
		if err := rows.Scan(&state.Code, &state.Name); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, state)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate states: %w", err)
	}

	return states, nil
}
