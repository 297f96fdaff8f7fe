package repository

import (
	"github.com/dmorgachev/ce-tracker/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User        UserRepository
	Record      RecordRepository
	Requirement RequirementRepository
	Course      CourseRepository
	State       StateRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Record:      NewRecordRepository(db),
		Requirement: NewRequirementRepository(db),
		Course:      NewCourseRepository(db),
		State:       NewStateRepository(db),
	}
}
