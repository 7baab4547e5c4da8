package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes {"error": message} and aborts the chain
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}

// AbortWithError records err for ErrorHandlerMiddleware and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
