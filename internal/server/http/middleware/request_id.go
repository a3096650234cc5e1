package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/pkg/requestid"
)

// RequestIDContextKey is a gin context key for the request identifier.
const RequestIDContextKey = "requestID"

// RequestID propagates X-Request-ID to the response and to backend calls,
// generating one when the client sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" || len(id) > 128 {
			id = requestid.New()
		}
		c.Set(RequestIDContextKey, id)
		c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
		c.Header(requestid.Header, id)
		c.Next()
	}
}
