package middleware

import (
	"github.com/cloud-inquiry-balance-web/internal/platform/correlation"
	"github.com/gin-gonic/gin"
)

// CorrelationIDKey is the key used to store correlation ID in the gin context
const CorrelationIDKey = "correlation_id"

// CorrelationID ensures each request has an identifier. It is echoed in the response,
// stored on the gin context and attached to the request context so outbound backend
// calls carry the same value.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(correlation.Header)
		if correlationID == "" {
			correlationID = correlation.NewID()
		}

		c.Header(correlation.Header, correlationID)
		c.Set(CorrelationIDKey, correlationID)
		c.Request = c.Request.WithContext(correlation.WithID(c.Request.Context(), correlationID))

		c.Next()
	}
}

// GetCorrelationID retrieves the correlation ID from the gin context if present
func GetCorrelationID(c *gin.Context) string {
	if id, exists := c.Get(CorrelationIDKey); exists {
		if correlationID, ok := id.(string); ok {
			return correlationID
		}
	}
	return ""
}
