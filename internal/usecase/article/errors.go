// Package article holds the article use-cases: fetching a stored article and
// storing a new one. Both hand the resulting entity to a presenter and return
// whatever the presenter renders.
package article

import (
	"errors"
	"fmt"
)

// Kind classifies an article failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindPersistence
	KindPresenter
)

// String returns the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	case KindPresenter:
		return "presenter"
	default:
		return "unexpected"
	}
}

// Sentinel errors, one per Kind. Every *Error matches the sentinel of its kind
// under errors.Is.
var (
	// ErrNotFound indicates that no article exists for the requested id.
	ErrNotFound = errors.New("article not found")

	// ErrPersistence indicates a storage failure.
	ErrPersistence = errors.New("article persistence failed")

	// ErrPresenter indicates that rendering the article failed.
	ErrPresenter = errors.New("article presentation failed")

	// ErrUnexpected covers everything else.
	ErrUnexpected = errors.New("unexpected article error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindPersistence:
		return ErrPersistence
	case KindPresenter:
		return ErrPresenter
	default:
		return ErrUnexpected
	}
}

// Error is the failure type returned by article use-cases and their driven
// adapters.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// NotFound builds a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Persistence builds a KindPersistence error wrapping cause.
func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: cause}
}

// Presenter builds a KindPresenter error wrapping cause.
func Presenter(message string, cause error) *Error {
	return &Error{Kind: KindPresenter, Message: message, Err: cause}
}

// Unexpected builds a KindUnexpected error wrapping cause.
func Unexpected(message string, cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: cause}
}

// KindOf returns the kind carried by err, or KindUnexpected when err is not
// an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
