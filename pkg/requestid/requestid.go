package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
)

const headerName = "X-Request-ID"

// Middleware tags every request with a UUIDv7 so log lines from one page
// render can be correlated with the backend calls it triggered.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerName)
		if id == "" {
			id = uuidv7.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(headerName, id)
		c.Next()
	}
}

// Get returns the request id attached by Middleware, or "" when missing.
func Get(c *gin.Context) string {
	return c.GetString("request_id")
}
