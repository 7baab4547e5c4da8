package controllers

import (
	"RestoFinder/middleware"
	"RestoFinder/models"
	"RestoFinder/services"
	"RestoFinder/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	FavoriteService *services.FavoriteService
}

func NewFavoriteController(favoriteService *services.FavoriteService) *FavoriteController {
	return &FavoriteController{
		FavoriteService: favoriteService,
	}
}

func userIDFrom(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	return userID, userID != ""
}

func (f *FavoriteController) GetFavorites(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.Error(utils.Unauthenticated("Unauthorized"))
		return
	}

	favorites, err := f.FavoriteService.GetFavorites(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (f *FavoriteController) AddFavorite(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.Error(utils.Unauthenticated("Unauthorized"))
		return
	}

	var requestBody models.FavoriteRequest
	if err := bindStrictJSON(c, &requestBody); err != nil || requestBody.RestaurantID == "" {
		c.Error(utils.ValidationFailed("Invalid request format or missing restaurantId"))
		return
	}

	favorites, err := f.FavoriteService.AddFavorite(c.Request.Context(), userID, requestBody.RestaurantID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (f *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.Error(utils.Unauthenticated("Unauthorized"))
		return
	}

	favorites, err := f.FavoriteService.RemoveFavorite(c.Request.Context(), userID, c.Param("restaurantId"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
