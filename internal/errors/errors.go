package errors

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/gin-gonic/gin"
)

// ErrorCategory classifies an error for logging and retry decisions.
type ErrorCategory string

const (
	CategoryValidation    ErrorCategory = "validation"
	CategoryNotFound      ErrorCategory = "not_found"
	CategoryNetwork       ErrorCategory = "network"
	CategoryTimeout       ErrorCategory = "timeout"
	CategoryRateLimit     ErrorCategory = "rate_limit"
	CategoryInternal      ErrorCategory = "internal"
	CategoryExternalAPI   ErrorCategory = "external_api"
	CategoryConfiguration ErrorCategory = "configuration"
)

// categorySpec holds everything a category implies: the errbuilder code,
// the HTTP status the API layer renders, and the label in Error() output.
type categorySpec struct {
	code   errbuilder.ErrCode
	status int
	label  string
}

var categorySpecs = map[ErrorCategory]categorySpec{
	CategoryValidation:    {errbuilder.CodeInvalidArgument, http.StatusBadRequest, "VALIDATION_ERROR"},
	CategoryNotFound:      {errbuilder.CodeNotFound, http.StatusNotFound, "NOT_FOUND"},
	CategoryNetwork:       {errbuilder.CodeUnavailable, http.StatusBadGateway, "NETWORK_ERROR"},
	CategoryTimeout:       {errbuilder.CodeDeadlineExceeded, http.StatusGatewayTimeout, "TIMEOUT_ERROR"},
	CategoryRateLimit:     {errbuilder.CodeResourceExhausted, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
	CategoryInternal:      {errbuilder.CodeInternal, http.StatusInternalServerError, "INTERNAL_ERROR"},
	CategoryExternalAPI:   {errbuilder.CodeUnavailable, http.StatusBadGateway, "EXTERNAL_API_ERROR"},
	CategoryConfiguration: {errbuilder.CodeFailedPrecondition, http.StatusInternalServerError, "CONFIGURATION_ERROR"},
}

// AppError wraps an errbuilder error with the HTTP context the API
// layer needs to render a structured response.
type AppError struct {
	*errbuilder.ErrBuilder
	Category   ErrorCategory `json:"category"`
	HTTPStatus int           `json:"http_status"`
	Timestamp  time.Time     `json:"timestamp"`
	RequestID  string        `json:"request_id,omitempty"`
}

func (e *AppError) Error() string {
	label := "UNKNOWN_ERROR"
	if spec, ok := categorySpecs[e.Category]; ok {
		label = spec.label
	}
	return fmt.Sprintf("[%s] %s", label, e.ErrBuilder.Msg)
}

func (e *AppError) Unwrap() error {
	return e.ErrBuilder.Unwrap()
}

// newError builds an AppError for a category. Detail pairs become the
// errbuilder detail map; a nil cause is simply omitted.
func newError(category ErrorCategory, msg string, cause error, details map[string]string) *AppError {
	spec := categorySpecs[category]

	builder := errbuilder.New().
		WithCode(spec.code).
		WithMsg(msg)

	if len(details) > 0 {
		errorMap := errbuilder.ErrorMap{}
		for key, value := range details {
			errorMap.Set(key, errors.New(value))
		}
		builder = builder.WithDetails(errbuilder.NewErrDetails(errorMap))
	}
	if cause != nil {
		builder = builder.WithCause(cause)
	}

	return &AppError{
		ErrBuilder: builder,
		Category:   category,
		HTTPStatus: spec.status,
		Timestamp:  time.Now(),
	}
}

// NewValidationError reports rejected input. Optional details are
// attached for the response body.
func NewValidationError(message string, details ...interface{}) *AppError {
	var detailMap map[string]string
	if len(details) > 0 {
		detailMap = map[string]string{"validation_details": fmt.Sprintf("%v", details[0])}
	}
	return newError(CategoryValidation, message, nil, detailMap)
}

// NewNotFoundError reports a missing resource by type and id.
func NewNotFoundError(resource, id string) *AppError {
	return newError(CategoryNotFound, fmt.Sprintf("%s not found", resource), nil,
		map[string]string{"resource_id": id})
}

func NewNetworkError(message string, cause error) *AppError {
	return newError(CategoryNetwork, message, cause, nil)
}

func NewTimeoutError(message string, cause error) *AppError {
	return newError(CategoryTimeout, message, cause, nil)
}

func NewRateLimitError(retryAfter string) *AppError {
	return newError(CategoryRateLimit, "Rate limit exceeded", nil,
		map[string]string{"retry_after": retryAfter})
}

func NewExternalAPIError(apiName string, cause error) *AppError {
	return newError(CategoryExternalAPI, fmt.Sprintf("%s API error", apiName), cause,
		map[string]string{"api_name": apiName})
}

func NewInternalError(message string, cause error) *AppError {
	return newError(CategoryInternal, "Internal server error", cause,
		map[string]string{"internal_details": message})
}

func NewConfigurationError(message string, cause error) *AppError {
	return newError(CategoryConfiguration, "Configuration error", cause,
		map[string]string{"config_details": message})
}

// ErrorHandler renders the last Gin error on the context as a
// structured AppError response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := ToAppError(c.Errors.Last().Err)
		LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
	}
}

// RecoveryHandler converts panics into internal-error responses.
func RecoveryHandler() gin.HandlerFunc {
	return gin.RecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		appErr := NewInternalError(
			fmt.Sprintf("Panic recovered: %v", recovered),
			fmt.Errorf("%v", recovered),
		)
		LogError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr)
	})
}

// ToAppError coerces any error into an AppError, classifying raw errors
// by their message and context sentinels.
func ToAppError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var ebErr *errbuilder.ErrBuilder
	if errors.As(err, &ebErr) {
		return &AppError{
			ErrBuilder: ebErr,
			Category:   CategoryInternal,
			HTTPStatus: http.StatusInternalServerError,
			Timestamp:  time.Now(),
		}
	}

	if errors.Is(err, context.Canceled) {
		return NewTimeoutError("Request cancelled", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError("Request deadline exceeded", err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "network is unreachable"):
		return NewNetworkError("Network connection failed", err)
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline exceeded"):
		return NewTimeoutError("Request timeout", err)
	}

	return NewInternalError("An unexpected error occurred", err)
}

// LogError logs an AppError at a level matching its category: client
// mistakes warn, transient upstream trouble is informational, the rest
// is an error.
func LogError(c *gin.Context, err *AppError) {
	logEntry := slog.With(
		"error_category", err.Category,
		"error_code", err.ErrBuilder.ErrCode(),
		"http_status", err.HTTPStatus,
		"ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetHeader("X-Request-ID"),
	)

	msg := err.ErrBuilder.Msg
	cause := err.ErrBuilder.Unwrap()

	switch err.Category {
	case CategoryValidation, CategoryNotFound, CategoryRateLimit:
		if details := err.ErrBuilder.Details; len(details.Errors) > 0 {
			logEntry.Warn(msg, "details", details.Errors)
		} else {
			logEntry.Warn(msg)
		}
	case CategoryNetwork, CategoryTimeout, CategoryExternalAPI:
		if cause != nil {
			logEntry.Info(msg, "cause", cause)
		} else {
			logEntry.Info(msg)
		}
	default:
		if cause != nil {
			logEntry.Error(msg, "cause", cause)
		} else {
			logEntry.Error(msg)
		}
	}
}

// IsRetryableError reports whether a retry could plausibly succeed.
// Only transient categories qualify.
func IsRetryableError(err error) bool {
	switch ToAppError(err).Category {
	case CategoryNetwork, CategoryTimeout, CategoryExternalAPI, CategoryRateLimit:
		return true
	default:
		return false
	}
}

// WrapError prefixes an error with formatted context, preserving the
// chain for errors.Is and errors.As.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}
