// Package apierror defines the error taxonomy every handler maps to an HTTP
// status. Services return these instead of raw gorm errors so the transport
// layer never has to inspect driver internals.
package apierror

import (
	"errors"
	"fmt"
)

// ValidationError: caller input failed a precondition. Always raised before a
// transaction is opened.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError: the update/delete target does not exist. Raised after rolling
// back any open transaction.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// RollbackError tags a failed transaction whose rollback ALSO failed. The
// original error is what callers see (Error/Unwrap delegate to it); the
// secondary rollback failure is carried for observability only.
type RollbackError struct {
	Original error
	Rollback error
}

func (e *RollbackError) Error() string { return e.Original.Error() }
func (e *RollbackError) Unwrap() error { return e.Original }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
