package middleware

import (
	"RestoFinder/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware renders the last error pushed with c.Error
func ErrorHandlerMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		statusCode, message := utils.Resolve(err)
		if statusCode >= 500 {
			logger.Errorw("Request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		}
		utils.ErrorResponse(c, statusCode, message)
	}
}
