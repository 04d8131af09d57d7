package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/cloud-inquiry-balance-web/internal/domain/inquiry"
	"github.com/gin-gonic/gin"
)

// Recovery catches panics, logs them with a stack trace and answers with the
// same 500 envelope the client synthesizes for unexpected failures.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered",
					"error", r,
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"correlation_id", GetCorrelationID(c),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, &inquiry.APIError{
					ResponseCode:    inquiry.CodeClient,
					ResponseMessage: inquiry.MessageUnexpected,
					Detail:          "internal server error",
				})
			}
		}()

		c.Next()
	}
}
