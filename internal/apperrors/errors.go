package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, expired or rejected session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the session's role may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUpstream indicates the backend answered with a non-2xx status.
var ErrUpstream = errors.New("backend request failed")

// ErrUpstreamUnavailable indicates the backend could not be reached at all.
var ErrUpstreamUnavailable = errors.New("backend unavailable")

// ErrMalformedResponse indicates the backend answered with a body of an unexpected shape.
var ErrMalformedResponse = errors.New("malformed backend response")

// ErrSuperseded indicates a newer request for the same screen replaced this one.
var ErrSuperseded = errors.New("request superseded by a newer one")

// ErrBudgetExceeded indicates a contract would push its budget past the allocated money.
var ErrBudgetExceeded = errors.New("budget would be exceeded")

// AppError carries an HTTP-ish code and a message along with the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// BackendError is a non-2xx answer from the backend. Message is the backend's
// own `message` field and is shown to the operator verbatim.
type BackendError struct {
	Status   int
	Message  string
	Endpoint string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend %s returned status %d", e.Endpoint, e.Status)
	}
	return e.Message
}

// Unwrap maps the backend status onto the local sentinel errors so callers can
// keep using errors.Is.
func (e *BackendError) Unwrap() error {
	switch {
	case e.Status == 400 || e.Status == 422:
		return ErrValidation
	case e.Status == 401:
		return ErrUnauthorized
	case e.Status == 403:
		return ErrForbidden
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 409:
		return ErrDuplicate
	default:
		return ErrUpstream
	}
}

// IsDegradable reports whether err is an I/O failure that a read screen should
// survive by showing no data instead of failing.
func IsDegradable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.Is(err, ErrUpstream)
}
