// Package apperror defines the error kinds shared by the store, services and handlers.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the HTTP layer
type Kind int

const (
	// Internal is any failure the caller cannot fix
	Internal Kind = iota
	// Validation is missing or malformed input
	Validation
	// Auth is missing or wrong credentials
	Auth
	// InvalidToken is a bearer token that failed verification
	InvalidToken
	// Authorization is an authenticated caller without the required role
	Authorization
	// NotFound is a resource that is absent or not visible to the caller
	NotFound
	// Conflict is a duplicate email or application
	Conflict
)

// Status returns the HTTP status code used for the kind.
// Conflicts are reported as 400 to match the existing API contract.
func (k Kind) Status() int {
	switch k {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case InvalidToken, Authorization:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Auth:
		return "auth"
	case InvalidToken:
		return "invalid_token"
	case Authorization:
		return "authorization"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries a kind and the message shown to the client
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and client message to an underlying error
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewValidation reports invalid input
func NewValidation(message string) *Error { return New(Validation, message) }

// NewAuth reports failed authentication
func NewAuth(message string) *Error { return New(Auth, message) }

// NewAuthorization reports a missing role
func NewAuthorization(message string) *Error { return New(Authorization, message) }

// NewNotFound reports a missing resource
func NewNotFound(message string) *Error { return New(NotFound, message) }

// NewConflict reports a duplicate
func NewConflict(message string) *Error { return New(Conflict, message) }

// KindOf returns the kind of err, or Internal when err carries none
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

// Is reports whether err is an application error of the given kind
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// MessageOf returns the client message carried by err, or fallback
func MessageOf(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
