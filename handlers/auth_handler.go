package handlers

import (
	"RestoFinder/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes sets up sign-up and, when supported, password login.
func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController, serviceKey gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", serviceKey, authController.Signup)

		if authController.AuthService.SupportsSignIn() {
			authGroup.POST("/login", authController.Login)
		}
	}
}
