package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/infrastructure/ratelimit"
	"github.com/inkpress-io/inkpress/internal/shared/constants"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
	"github.com/inkpress-io/inkpress/internal/shared/utils"
)

// RateLimit enforces per-client request limits. Authenticated clients are
// keyed by user ID, anonymous ones by IP. A limiter failure fails open so a
// Redis outage never takes the storefront down with it.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())
		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			key = fmt.Sprintf("user:%v", userID)
		}

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
