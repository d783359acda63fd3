package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// StatementTimeout bounds each request's database work by deriving a
// deadline-carrying context. Repositories run their statements with the
// request context, so hitting the deadline rolls back the open transaction.
func StatementTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
