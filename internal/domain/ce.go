package domain

import "time"

// Course is reference data used for record creation and display; this service
// never mutates it.
type Course struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Provider  string    `json:"provider" db:"provider"`
	State     string    `json:"state" db:"state"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CERecord is one completed course instance. Records are insert-only: no
// update or delete operation exists, and duplicate submissions create
// duplicate rows.
type CERecord struct {
	ID            string    `json:"id" db:"id"`
	UserID        string    `json:"user_id" db:"user_id"`
	CourseID      string    `json:"course_id" db:"course_id"`
	DateCompleted time.Time `json:"date_completed" db:"date_completed"`
	HoursEarned   int       `json:"hours_earned" db:"hours_earned"`
	Notes         *string   `json:"notes" db:"notes"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CERequirement is the global renewal policy. At most one row exists; the
// absence of a row is a distinct "not configured" state, never defaulted.
type CERequirement struct {
	ID                  string `json:"id" db:"id"`
	RequiredHours       int    `json:"required_hours" db:"required_hours"`
	RenewalIntervalDays int    `json:"renewal_interval_days" db:"renewal_interval_days"`
}

// CEStatus is the computed progress toward the renewal requirement.
type CEStatus struct {
	RequiredHours   int       `json:"required_hours"`
	HoursCompleted  int       `json:"hours_completed"`
	HoursRemaining  int       `json:"hours_remaining"`
	NextRenewalDate time.Time `json:"next_renewal_date"`
}

// ComputeStatus derives the renewal status from the policy and a snapshot of
// the user's records. The next renewal date is projected from the most recent
// completion; with no records it is projected from now, so a user with zero
// records reads as freshly renewed.
func ComputeStatus(req CERequirement, records []CERecord, now time.Time) CEStatus {
	completed := 0
	latest := now
	for i, r := range records {
		completed += r.HoursEarned
		if i == 0 || r.DateCompleted.After(latest) {
			latest = r.DateCompleted
		}
	}

	remaining := req.RequiredHours - completed
	if remaining < 0 {
		remaining = 0
	}

	return CEStatus{
		RequiredHours:   req.RequiredHours,
		HoursCompleted:  completed,
		HoursRemaining:  remaining,
		NextRenewalDate: latest.AddDate(0, 0, req.RenewalIntervalDays),
	}
}
