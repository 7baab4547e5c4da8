package middleware

import (
	"RestoFinder/services"
	"RestoFinder/utils"
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// ServiceKeyMiddleware admits requests carrying one of keys as bearer token.
func ServiceKeyMiddleware(keys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := services.ParseBearer(c.GetHeader("Authorization"))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		for _, key := range keys {
			if subtle.ConstantTimeCompare([]byte(token), []byte(key)) == 1 {
				c.Next()
				return
			}
		}
		utils.AbortWithError(c, utils.Unauthenticated("Unauthorized"))
	}
}
