package domain

import "errors"

var (
	// ErrLeadNotFound is returned when a lead id does not exist in the store.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrStepIncomplete is returned when forward navigation is attempted
	// before every required question of the current step is answered.
	ErrStepIncomplete = errors.New("current step incomplete")
	// ErrNoSuchTransition is returned for navigation the funnel does not allow.
	ErrNoSuchTransition = errors.New("transition not allowed")
	// ErrSubmissionInFlight guards against double-submit while a lead
	// submission is pending.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// ValidationError reports the first violated rule of a lead payload.
// It is an expected, typed result: handlers translate it to a 400, never a 500.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
