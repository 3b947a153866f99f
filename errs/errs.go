package errs

import (
	"errors"
	"fmt"
)

var (
	Unauthenticated = NewUnauthenticatedError("unauthenticated")
	Unavailable     = &Error{Kind: KindUnavailable, Message: "service unavailable"}
)

type Error struct {
	Kind    Kind    `json:"kind"`
	Message string  `json:"message"`
	Field   *string `json:"field,omitempty"`
}

type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindForbidden       Kind = "forbidden"
	KindAlreadyResolved Kind = "already_resolved"
	KindConflict        Kind = "conflict"
	KindUnauthenticated Kind = "unauthenticated"
	// KindUnavailable is the kind of every error that is not an [*Error],
	// storage faults mostly.
	KindUnavailable Kind = "unavailable"
)

func NewInvalidArgumentError(field, message string) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: message,
		Field:   &field,
	}
}

func InvalidArgumentError(message string) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Message: message,
	}
}

func NotFoundError(message string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: message,
	}
}

func ForbiddenError(message string) *Error {
	return &Error{
		Kind:    KindForbidden,
		Message: message,
	}
}

func AlreadyResolvedError(message string) *Error {
	return &Error{
		Kind:    KindAlreadyResolved,
		Message: message,
	}
}

func ConflictError(message string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: message,
	}
}

func NewUnauthenticatedError(message string) *Error {
	return &Error{
		Kind:    KindUnauthenticated,
		Message: message,
	}
}

func (e *Error) Error() string {
	if e.Field != nil {
		return fmt.Sprintf("%s (field: %s): %s", e.Kind, *e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf reports the kind of err.
// Errors that are not an [*Error] anywhere in the chain are [KindUnavailable].
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnavailable
}

// Public returns the error as it can be shown to a caller.
// Internal errors are replaced by [Unavailable] so no storage detail leaks.
func Public(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Unavailable
}

func IsNotFound(err error) bool        { return err != nil && KindOf(err) == KindNotFound }
func IsForbidden(err error) bool       { return err != nil && KindOf(err) == KindForbidden }
func IsAlreadyResolved(err error) bool { return err != nil && KindOf(err) == KindAlreadyResolved }
func IsConflict(err error) bool        { return err != nil && KindOf(err) == KindConflict }
func IsInvalidArgument(err error) bool { return err != nil && KindOf(err) == KindInvalidArgument }
