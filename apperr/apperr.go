// Package apperr defines the closed set of error variants the API can
// return to a client. Every handler failure is mapped into one of these
// kinds; the kind carries the HTTP status so call sites never pick
// status codes ad hoc.
package apperr

import (
	"errors"
	"net/http"
)

// Kind discriminates the error variants.
type Kind int

const (
	// KindInvalidID means an identifier failed the reference format check.
	KindInvalidID Kind = iota
	// KindValidation means a field constraint was violated.
	KindValidation
	// KindConflict means a unique field already exists.
	KindConflict
	// KindNotFound means a well-formed reference matched no record.
	KindNotFound
	// KindUnauthenticated means no user is attached to the request.
	KindUnauthenticated
	// KindForbidden means the user lacks the required tier or ownership.
	KindForbidden
	// KindInternal is any store-layer failure not matching the above.
	KindInternal
)

// Error is a tagged API error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidID, KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// InvalidID reports a malformed reference, e.g. "Invalid Tag Id".
func InvalidID(entity string) *Error {
	return &Error{Kind: KindInvalidID, Message: "Invalid " + entity + " Id"}
}

// Validation reports a field constraint violation with a catalog message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict reports a uniqueness violation, e.g. "Tag already exist".
func Conflict(entity string) *Error {
	return &Error{Kind: KindConflict, Message: entity + " already exist"}
}

// NotFound reports a missing record, e.g. "Tag not found".
func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Message: entity + " not found"}
}

// Unauthenticated reports a request with no logged-in user.
func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "You must be logged in to perform the action"}
}

// Forbidden reports an authorization failure with the given message.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Internal wraps an unexpected failure behind a generic client message.
// The underlying error is logged at the boundary, never sent to the client.
func Internal() *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong"}
}

// From converts any error into an *Error, defaulting to Internal for
// errors outside the taxonomy.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal()
}
