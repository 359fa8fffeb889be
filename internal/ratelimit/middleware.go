package ratelimit

import (
	"github.com/gin-gonic/gin"

	"github.com/trafficwizard/traffic-wizard/internal/errors"
)

// Middleware rejects requests from clients that exceed the configured
// rate with a structured 429 response.
func Middleware(limiter *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			appErr := errors.NewRateLimitError("1s")
			errors.LogError(c, appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		c.Next()
	}
}
