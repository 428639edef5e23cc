package service

import "fmt"

// The scheduling core reports three kinds of failure. All are surfaced
// synchronously to the caller and none are retried automatically.

// ValidationError marks malformed or out-of-policy input: empty content, a
// past date, an unknown slot key. Recoverable by the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// PersistenceError marks a post store failure (unreachable or rejected).
type PersistenceError struct {
	Msg string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PublishError marks a rejected or failed publish dispatch. The post's
// stored status is left unchanged.
type PublishError struct {
	Msg string
	Err error
}

func (e *PublishError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *PublishError) Unwrap() error { return e.Err }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
