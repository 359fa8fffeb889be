package monitoring

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

const slowRequestThreshold = 5 * time.Second

// MonitoringMiddleware counts every request, records its latency and
// status, and logs it. Slow requests and server errors get an extra
// log line.
func MonitoringMiddleware(metrics *Metrics, logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.IncrementRequest()

		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		metrics.RecordResponseTime(duration)
		metrics.RecordRequestByStatus(status)
		if status >= 400 {
			metrics.IncrementError()
		}

		logger.RequestLogger(method, path, ip, c.GetHeader("User-Agent"), status, duration)

		for _, ginErr := range c.Errors {
			logger.APIErrorLogger(ginErr.Err, method, path, ip, status)
		}

		if duration > slowRequestThreshold {
			logger.PerformanceLogger("slow_request", duration.Seconds(), "seconds")
		}
		if status >= 500 {
			logger.SystemLogger("server_error", fmt.Sprintf("Status %d for %s %s", status, method, path))
		}
	}
}
