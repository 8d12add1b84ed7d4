// Package auth holds the authentication use-cases. Only rendering the login
// page exists today; processing credentials is handled elsewhere.
package auth

import (
	"errors"
	"fmt"
)

// ErrUnexpected is matched by every *Error.
var ErrUnexpected = errors.New("unexpected authentication error")

// Error is the failure type of the auth use-cases and their driven adapters.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication: %s: %v", e.Message, e.Err)
	}
	return "authentication: " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrUnexpected }

// Unexpected builds an *Error wrapping cause.
func Unexpected(message string, cause error) *Error {
	return &Error{Message: message, Err: cause}
}
