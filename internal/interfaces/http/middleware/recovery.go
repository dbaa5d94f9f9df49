package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
)

// Recovery converts panics into 500 responses with a structured log line
// instead of gin's default text output.
func Recovery(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					logging.Any("panic", r),
					logging.String("path", c.Request.URL.Path),
					logging.String("request_id", GetRequestID(c)))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{
						"code":    "COMMON_001",
						"message": "internal server error",
					},
				})
			}
		}()
		c.Next()
	}
}
