package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/pkg/database"
)

// recordRepository implements RecordRepository interface
type recordRepository struct {
	db *database.Postgres
}

// NewRecordRepository creates a new CE record repository
func NewRecordRepository(db *database.Postgres) RecordRepository {
	return &recordRepository{db: db}
}

// Create inserts a CE completion record. Referential integrity for the
// course is enforced by the store; a violation surfaces as ErrForeignKey.
func (r *recordRepository) Create(ctx context.Context, record *domain.CERecord) error {
	query := `
		INSERT INTO ce_records (id, user_id, course_id, date_completed, hours_earned, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	var notes sql.NullString
	if record.Notes != nil {
		notes = sql.NullString{String: *record.Notes, Valid: true}
	}

	_, err := r.db.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.CourseID,
		record.DateCompleted,
		record.HoursEarned,
		notes,
		record.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("record references missing row: %w", ErrForeignKey)
			}
		}
		return fmt.Errorf("failed to create ce record: %w", err)
	}

	return nil
}

// ListByUser returns every CE record owned by the user, newest completion
// first.
func (r *recordRepository) ListByUser(ctx context.Context, userID string) ([]domain.CERecord, error) {
	query := `
		SELECT id, user_id, course_id, date_completed, hours_earned, notes, created_at
		FROM ce_records
		WHERE user_id = $1
		ORDER BY date_completed DESC, created_at DESC
	`

	rows, err := r.db.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ce records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.CERecord, 0)
	for rows.Next() {
		var record domain.CERecord
		var notes sql.NullString

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.CourseID,
			&record.DateCompleted,
			&record.HoursEarned,
			&notes,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ce record: %w", err)
		}

		if notes.Valid {
			record.Notes = &notes.String
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ce records: %w", err)
	}

	return records, nil
}
