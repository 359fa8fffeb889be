package monitoring

import (
	"context"
	"log/slog"
	"os"
	"time"
)

var startTime = time.Now()

// Logger wraps slog with helpers for the recurring log shapes of the
// service: requests, scoring passes, provider calls.
type Logger struct {
	*slog.Logger
}

// NewLogger emits JSON to stdout with source locations and RFC3339
// timestamps under a "timestamp" key.
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("timestamp", a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	})
	return &Logger{Logger: slog.New(handler)}
}

// RequestLogger records one completed HTTP request.
func (l *Logger) RequestLogger(method, path, ip, userAgent string, statusCode int, duration time.Duration) {
	l.Info("HTTP Request",
		"method", method,
		"path", path,
		"ip", ip,
		"user_agent", userAgent,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
	)
}

// AnalysisLogger records one completed content scoring pass.
func (l *Logger) AnalysisLogger(contentID string, wordCount int, qualityScore float64, seoScore int, duration time.Duration, cacheHit bool) {
	l.Info("Analysis Completed",
		"content_id", contentID,
		"word_count", wordCount,
		"quality_score", qualityScore,
		"seo_score", seoScore,
		"duration_ms", duration.Milliseconds(),
		"cache_hit", cacheHit,
	)
}

// APIErrorLogger records an error surfaced by a handler.
func (l *Logger) APIErrorLogger(err error, method, path, ip string, statusCode int) {
	l.Error("API Error",
		"error", err.Error(),
		"method", method,
		"path", path,
		"ip", ip,
		"status_code", statusCode,
	)
}

// ExternalAPILogger records an outbound provider call. Failures log at
// warn so degraded providers stand out without paging.
func (l *Logger) ExternalAPILogger(apiName, operation string, duration time.Duration, success bool) {
	level := slog.LevelInfo
	if !success {
		level = slog.LevelWarn
	}
	l.Log(context.Background(), level, "External API Call",
		"api_name", apiName,
		"operation", operation,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// SystemLogger records a process-level event with uptime attached.
func (l *Logger) SystemLogger(event, details string) {
	l.Info("System Event",
		"event", event,
		"details", details,
		"uptime", time.Since(startTime).String(),
	)
}

// PerformanceLogger records a named measurement.
func (l *Logger) PerformanceLogger(metric string, value float64, unit string) {
	l.Info("Performance Metric",
		"metric", metric,
		"value", value,
		"unit", unit,
	)
}
