package handlers

import (
	"RestoFinder/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFavoriteRoutes(router *gin.RouterGroup, favoriteController *controllers.FavoriteController, auth gin.HandlerFunc) {
	favoriteGroup := router.Group("/favorites", auth)
	{
		favoriteGroup.GET("", favoriteController.GetFavorites)
		favoriteGroup.POST("", favoriteController.AddFavorite)
		favoriteGroup.DELETE("/:restaurantId", favoriteController.RemoveFavorite)
	}
}
