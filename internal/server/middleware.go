package server

import (
	"errors"
	"net/http"
	"time"

	"gig-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware resolves the caller's identity from the X-User-ID
// header. Authentication itself lives in the upstream gateway; by the time a
// request reaches this service the header is trusted.
func IdentityMiddleware(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing X-User-ID header"), "authentication required")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}
