package route

import (
	"RestoFinder/controllers"
	"RestoFinder/handlers"
	"RestoFinder/middleware"
	"RestoFinder/models"
	"RestoFinder/services"
	"RestoFinder/store"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Store        store.KeyValueStore
	Provider     services.IdentityProvider
	ServiceKeys  []string
	Seed         []models.Restaurant
	AllowOrigins []string // ["*"] allows any origin
	Logger       *zap.SugaredLogger
}

// NewRouter builds the engine with logging, recovery, error rendering and CORS.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorHandlerMiddleware(deps.Logger))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        10 * time.Minute,
	}
	if len(deps.AllowOrigins) == 0 || (len(deps.AllowOrigins) == 1 && deps.AllowOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = deps.AllowOrigins
	}
	r.Use(cors.New(corsConfig))

	RegisterRoutes(r, deps)
	return r
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	authService := services.NewAuthService(deps.Provider, deps.Logger)
	restaurantService := services.NewRestaurantService(deps.Store, deps.Logger)
	favoriteService := services.NewFavoriteService(deps.Store, deps.Logger)

	authHandler := controllers.NewAuthController(authService)
	restaurantHandler := controllers.NewRestaurantController(restaurantService, favoriteService, authService, deps.Seed)
	favoriteHandler := controllers.NewFavoriteController(favoriteService)

	serviceKey := middleware.ServiceKeyMiddleware(deps.ServiceKeys)
	userAuth := middleware.AuthMiddleware(authService)

	router.GET("/health", controllers.Health)

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authHandler, serviceKey)
		handlers.RegisterRestaurantRoutes(v1Routes, restaurantHandler, serviceKey)
		handlers.RegisterFavoriteRoutes(v1Routes, favoriteHandler, userAuth)
	}
}
