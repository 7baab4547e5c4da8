package handlers

import (
	"RestoFinder/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRestaurantRoutes(router *gin.RouterGroup, restaurantController *controllers.RestaurantController, serviceKey gin.HandlerFunc) {
	restaurantGroup := router.Group("/restaurants")
	{
		restaurantGroup.GET("", restaurantController.GetAllRestaurants)
		restaurantGroup.POST("/init", serviceKey, restaurantController.InitRestaurants)
		restaurantGroup.GET("/cuisines", restaurantController.GetCuisines)
		restaurantGroup.GET("/discover", restaurantController.Discover)
		restaurantGroup.GET("/:id", restaurantController.GetRestaurantByID)
	}
}
