// Package outcome defines the failure taxonomy shared by the stores.
//
// Every store operation that can be refused returns an *Error. Its Kind is
// one of the sentinel errors below, so callers branch with errors.Is, and
// its message is the user-facing text shown by the client.
package outcome

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrDuplicateApplication = errors.New("duplicate application")
	ErrEmailInUse           = errors.New("email in use")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotFound             = errors.New("not found")
	ErrNotFoundOrForbidden  = errors.New("not found or forbidden")
	ErrInvalid              = errors.New("invalid input")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAlreadyRegistered    = errors.New("already registered")
	ErrRateLimited          = errors.New("rate limited")
)

// Error is a refused operation.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Fail builds an *Error of the given kind.
func Fail(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

// Failf is Fail with formatting.
func Failf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Message returns the user-facing text for err. Errors that are not an
// *Error produce a generic message so internal details never reach a user.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

// KindOf returns the sentinel kind of err, or nil when err is not an *Error.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}
