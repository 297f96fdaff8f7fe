package repository

import (
	"context"
	"fmt"

	"github.com/dmorgachev/ce-tracker/internal/domain"
	"github.com/dmorgachev/ce-tracker/pkg/database"
)

// courseRepository implements CourseRepository interface
type courseRepository struct {
	db *database.Postgres
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *database.Postgres) CourseRepository {
	return &courseRepository{db: db}
}

// List returns all course reference data
func (r *courseRepository) List(ctx context.Context) ([]domain.Course, error) {
	query := `
		SELECT id, title, provider, state, created_at
		FROM courses
		ORDER BY title
	`

	rows, err := r.db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		var course domain.Course
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Provider,
			&course.State,
			&course.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}

	return courses, nil
}
