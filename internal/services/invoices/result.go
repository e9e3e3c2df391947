package invoices

import "billing-dashboard-backend/internal/validation"

// Outcome is the terminal state of one mutation call.
type Outcome int

const (
	Succeeded Outcome = iota
	ValidationFailed
	PersistenceFailed
)

// MutationResult carries either field errors or a user-facing message back to
// the caller. A Succeeded result carries neither; on create/update the caller
// redirects instead of rendering anything.
type MutationResult struct {
	Outcome Outcome
	Errors  validation.FieldErrors
	Message string
}

func succeeded() MutationResult {
	return MutationResult{Outcome: Succeeded}
}

func validationFailed(errs validation.FieldErrors, msg string) MutationResult {
	return MutationResult{Outcome: ValidationFailed, Errors: errs, Message: msg}
}

func persistenceFailed(msg string) MutationResult {
	return MutationResult{Outcome: PersistenceFailed, Message: msg}
}
