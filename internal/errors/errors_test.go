package errors

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		category ErrorCategory
		status   int
	}{
		{"validation", NewValidationError("bad input", "field missing"), CategoryValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("content", "abc-123"), CategoryNotFound, http.StatusNotFound},
		{"network", NewNetworkError("connection lost", fmt.Errorf("refused")), CategoryNetwork, http.StatusBadGateway},
		{"timeout", NewTimeoutError("too slow", nil), CategoryTimeout, http.StatusGatewayTimeout},
		{"rate limit", NewRateLimitError("1s"), CategoryRateLimit, http.StatusTooManyRequests},
		{"external api", NewExternalAPIError("gemini", fmt.Errorf("503")), CategoryExternalAPI, http.StatusBadGateway},
		{"internal", NewInternalError("boom", nil), CategoryInternal, http.StatusInternalServerError},
		{"configuration", NewConfigurationError("missing key", nil), CategoryConfiguration, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestAppErrorMessageIncludesCode(t *testing.T) {
	err := NewValidationError("content is required")

	assert.Equal(t, "[VALIDATION_ERROR] content is required", err.Error())

	notFound := NewNotFoundError("content", "abc")
	assert.Equal(t, "[NOT_FOUND] content not found", notFound.Error())
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{"passes through app errors", NewRateLimitError("1s"), CategoryRateLimit},
		{"connection refused", fmt.Errorf("dial tcp: connection refused"), CategoryNetwork},
		{"no such host", fmt.Errorf("lookup api.example.com: no such host"), CategoryNetwork},
		{"timeout string", fmt.Errorf("i/o timeout"), CategoryTimeout},
		{"context canceled", context.Canceled, CategoryTimeout},
		{"context deadline", context.DeadlineExceeded, CategoryTimeout},
		{"unknown error", fmt.Errorf("something odd"), CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, ToAppError(tt.err).Category)
		})
	}
}

func TestToAppErrorNil(t *testing.T) {
	assert.Nil(t, ToAppError(nil))
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"network", NewNetworkError("down", nil), true},
		{"timeout", NewTimeoutError("slow", nil), true},
		{"external api", NewExternalAPIError("gemini", nil), true},
		{"rate limit", NewRateLimitError("1s"), true},
		{"validation", NewValidationError("bad"), false},
		{"not found", NewNotFoundError("content", "x"), false},
		{"internal", NewInternalError("boom", nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryableError(tt.err))
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := fmt.Errorf("root cause")

	wrapped := WrapError(cause, "loading content %s", "abc")

	assert.EqualError(t, wrapped, "loading content abc: root cause")
	assert.ErrorIs(t, wrapped, cause)
	assert.Nil(t, WrapError(nil, "ignored"))
}
