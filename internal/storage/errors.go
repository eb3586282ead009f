package storage

import "errors"

// ErrLogNotFound is returned when no daily_log row matches the lookup key.
var ErrLogNotFound = errors.New("log not found")

// Error wraps an unexpected datastore failure with the repository operation
// that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
