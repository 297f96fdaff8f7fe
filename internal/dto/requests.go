package dto

// SignupRequest represents a signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateRecordRequest represents a CE record submission. Hours are validated
// in the service so out-of-range values surface through the shared taxonomy.
type CreateRecordRequest struct {
	CourseID      string  `json:"course_id" binding:"required,uuid"`
	DateCompleted string  `json:"date_completed" binding:"required"`
	HoursEarned   int     `json:"hours_earned"`
	Notes         *string `json:"notes"`
}

// UpdateSettingsRequest updates the caller's jurisdiction state
type UpdateSettingsRequest struct {
	State string `json:"state" binding:"required"`
}

// RecordResponse represents a stored CE record
type RecordResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	CourseID      string  `json:"course_id"`
	DateCompleted string  `json:"date_completed"`
	HoursEarned   int     `json:"hours_earned"`
	Notes         *string `json:"notes,omitempty"`
}

// StatusResponse represents the computed CE renewal status
type StatusResponse struct {
	RequiredHours   int    `json:"required_hours"`
	HoursCompleted  int    `json:"hours_completed"`
	HoursRemaining  int    `json:"hours_remaining"`
	NextRenewalDate string `json:"next_renewal_date"`
}

// IdentityResponse represents the resolved caller identity
type IdentityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	State string `json:"state"`
	IsPro bool   `json:"is_pro"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
