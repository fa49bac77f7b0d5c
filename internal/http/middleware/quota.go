// README: Daily generation quota middleware, keyed by client IP.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/modules/aiusage"
)

// Quota consumes one generation from the caller's daily allowance before the
// handler runs. A nil service disables the check.
func Quota(quota *aiusage.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if quota == nil {
			c.Next()
			return
		}

		err := quota.UseGeneration(c.Request.Context(), c.ClientIP())
		if errors.Is(err, aiusage.ErrQuotaExhausted) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Daily itinerary limit reached. Please try again tomorrow.",
			})
			return
		}
		// A quota backend error fails open.
		c.Next()
	}
}
