package controllers

import (
	"RestoFinder/models"
	"RestoFinder/services"
	"RestoFinder/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	RestaurantService *services.RestaurantService
	FavoriteService   *services.FavoriteService
	AuthService       *services.AuthService
	Seed              []models.Restaurant
}

func NewRestaurantController(restaurantService *services.RestaurantService, favoriteService *services.FavoriteService, authService *services.AuthService, seed []models.Restaurant) *RestaurantController {
	return &RestaurantController{
		RestaurantService: restaurantService,
		FavoriteService:   favoriteService,
		AuthService:       authService,
		Seed:              seed,
	}
}

func (s *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := s.RestaurantService.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

func (s *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurant, err := s.RestaurantService.GetRestaurantByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// InitRestaurants seeds the catalog if it is empty.
func (s *RestaurantController) InitRestaurants(c *gin.Context) {
	count, err := s.RestaurantService.BootstrapIfEmpty(c.Request.Context(), s.Seed)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Restaurants initialized successfully"
	if count == 0 {
		message = "Restaurants already initialized"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "count": count})
}

func (s *RestaurantController) GetCuisines(c *gin.Context) {
	restaurants, err := s.RestaurantService.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cuisines": services.Cuisines(restaurants)})
}

// Discover filters and sorts the catalog.
// Query params: q, cuisine, sort, favoritesOnly (needs a bearer token).
func (s *RestaurantController) Discover(c *gin.Context) {
	sortKey, err := services.ParseSortKey(c.Query("sort"))
	if err != nil {
		c.Error(err)
		return
	}

	favoritesOnly := false
	if raw := c.Query("favoritesOnly"); raw != "" {
		favoritesOnly, err = strconv.ParseBool(raw)
		if err != nil {
			c.Error(utils.ValidationFailed("favoritesOnly must be a boolean"))
			return
		}
	}

	query := models.Query{
		SearchText:    c.Query("q"),
		Cuisine:       c.DefaultQuery("cuisine", models.AllCuisines),
		FavoritesOnly: favoritesOnly,
		SortKey:       sortKey,
	}

	ctx := c.Request.Context()
	if favoritesOnly {
		userID, err := s.AuthService.ResolveHeader(ctx, c.GetHeader("Authorization"))
		if err != nil {
			c.Error(err)
			return
		}
		query.Favorites, err = s.FavoriteService.GetFavorites(ctx, userID)
		if err != nil {
			c.Error(err)
			return
		}
	}

	catalog, err := s.RestaurantService.ListAll(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurants": services.Discover(catalog, query),
		"cuisines":    services.Cuisines(catalog),
	})
}
