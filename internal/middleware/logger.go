package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLogger records one line per request after the handler chain ran.
func AccessLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf("%s %s -> %d (%s) ip=%s rid=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
			c.GetString(ContextRequestID),
		)
	}
}
