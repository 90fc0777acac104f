package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{NewUnauthenticatedError("no token"), http.StatusUnauthorized},
		{NewValidationError("bad"), http.StatusBadRequest},
		{NewNotFoundError("missing"), http.StatusNotFound},
		{NewConflictError("dup"), http.StatusConflict},
		{NewRemoteError("Failed to save", errors.New("boom")), http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", NewConflictError("dup")), http.StatusConflict},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRemoteErrorIsRetryable(t *testing.T) {
	var appErr *AppError
	if !errors.As(NewRemoteError("Failed to load", errors.New("down")), &appErr) || !appErr.Retryable() {
		t.Fatalf("remote errors should be retryable")
	}
	if !errors.As(NewValidationError("bad"), &appErr) || appErr.Retryable() {
		t.Fatalf("validation errors should not be retryable")
	}
}

func TestRemoteErrorTimeoutMessage(t *testing.T) {
	err := NewRemoteError("Failed to load profile", fmt.Errorf("get: %w", context.DeadlineExceeded))
	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError")
	}
	if !strings.Contains(appErr.Message, "timed out") {
		t.Errorf("expected timeout in message, got %q", appErr.Message)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("cause should stay in the chain")
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewNotFoundError("gone"))
	if !IsKind(err, KindNotFound) {
		t.Errorf("expected not_found kind")
	}
	if IsKind(err, KindConflict) {
		t.Errorf("unexpected conflict kind")
	}
}
