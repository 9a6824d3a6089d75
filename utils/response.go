package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse writes the marketplace's success envelope: every handler
// returns {status, message, data} so clients parse one shape everywhere
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError writes the error envelope. The message is the client-facing
// summary; err carries the wrapped detail for debugging
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
