// Package apperr defines the sentinel error categories used across dt-taxonomy-cli.
//
// Error taxonomy
//
//	UserError  – caused by missing or invalid user input (wrong flag, unknown
//	             dimension value, empty title, …).
//	             The CLI prints only the message; usage help is NOT repeated.
//	             Exit code: 1.
//
//	StorageError – writing the serialized collection back to its storage slot
//	               failed (quota, permissions, revision conflict). The
//	               collection computed before the write is discarded; callers
//	               reload from the store to observe the true state.
//	               Exit code: 1.
//
//	ErrCancelled – the user deliberately aborted an interactive flow (taxonomy
//	               form, comparison selector, clear confirmation).
//	               Exit code: 0 (not a failure).
//
// Everything else is a plain Go error (storage I/O, decoding, …) and is
// propagated with fmt.Errorf("context: %w", err) wrapping. A record that does
// not exist is reported with a boolean, never with an error.
package apperr

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when the user explicitly aborts an interactive
// operation.  The CLI should exit 0 rather than 1 when it sees this error.
var ErrCancelled = errors.New("operation cancelled")

// UserError represents an error caused by invalid or missing user input.
// Cobra command handlers return this instead of a bare fmt.Errorf so that
// the root command can suppress repeated usage output and format the message
// in a user-friendly way.
type UserError struct {
	Message string
}

func (e *UserError) Error() string { return e.Message }

// User creates a UserError with the given message.
func User(msg string) error { return &UserError{Message: msg} }

// Userf creates a formatted UserError.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// IsUser reports whether err is (or wraps) a *UserError.
func IsUser(err error) bool {
	var u *UserError
	return errors.As(err, &u)
}

// StorageError wraps a failed write to the storage slot.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for operation op. A nil err stays nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is (or wraps) a *StorageError.
func IsStorage(err error) bool {
	var s *StorageError
	return errors.As(err, &s)
}
