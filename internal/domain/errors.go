package domain

import "errors"

// Error taxonomy shared across services and handlers. Services wrap these
// with fmt.Errorf("...: %w", ...) so handlers can classify with errors.Is.
var (
	// ErrUnauthenticated is returned when no session credential is present,
	// the credential is malformed, or the identity provider rejects it.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when an authenticated caller lacks the
	// privilege an operation requires.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation is returned for malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrRequirementMissing is returned when no CE renewal policy is
	// configured. It is a reportable state of its own, never silently
	// replaced with zero-valued defaults.
	ErrRequirementMissing = errors.New("ce requirement not configured")

	// ErrUpstream is returned when the identity or payment provider fails
	// for reasons other than rejecting the caller's credentials.
	ErrUpstream = errors.New("upstream provider failure")
)
