package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies failures the way callers need to react to them.
type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindValidation      ErrorKind = "validation"
	KindNotFound        ErrorKind = "not_found"
	KindConflict        ErrorKind = "conflict"
	KindRemote          ErrorKind = "remote"
)

// AppError is a user-facing failure scoped to one operation.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Retryable reports whether re-triggering the same operation may succeed.
// Only remote failures qualify; nothing retries automatically.
func (e *AppError) Retryable() bool { return e.Kind == KindRemote }

func NewUnauthenticatedError(msg string) error {
	return &AppError{Kind: KindUnauthenticated, Message: msg}
}

func NewValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &AppError{Kind: KindConflict, Message: msg}
}

// NewRemoteError wraps a failed call against the store, asset store or
// identity service. Deadline overruns get their own message.
func NewRemoteError(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		msg = msg + " (timed out)"
	}
	return &AppError{Kind: KindRemote, Message: msg + ". Please try again.", Err: err}
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// StatusFor maps an error onto an HTTP status code.
func StatusFor(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRemote:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
