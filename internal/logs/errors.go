package logs

import "fmt"

// ValidationError represents user-facing validation issues.
type ValidationError struct {
	msg     string
	details []string
}

func (e ValidationError) Error() string {
	return e.msg
}

// Details lists the individual problems behind the error, if any.
func (e ValidationError) Details() []string {
	return e.details
}

// NewValidationError creates a new validation error.
func NewValidationError(format string, args ...interface{}) error {
	return ValidationError{msg: fmt.Sprintf(format, args...)}
}

func newValidationErrorWithDetails(msg string, details []string) error {
	return ValidationError{msg: msg, details: details}
}
