package middleware

import (
	"RestoFinder/services"
	"RestoFinder/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the resolved user id.
const UserIDKey = "userId"

// AuthMiddleware resolves the bearer token before the handler runs.
// Unauthenticated requests stop here and never reach storage.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := authService.ResolveHeader(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			utils.AbortWithError(c, err)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
