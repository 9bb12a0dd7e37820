package router

import (
	"time"

	"github.com/foodshare-dev/foodshare/internal/handlers"
	"github.com/foodshare-dev/foodshare/internal/middleware"
	"github.com/foodshare-dev/foodshare/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter registers every (resource, operation) route explicitly.
// Reads use optional auth so anonymous viewers get representations
// without viewer-dependent flags; writes require a session.
func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.LoginUser)
		}

		users := api.Group("/users")
		{
			users.POST("", handlers.CreateUser)
			users.GET("", middleware.OptionalAuthMiddleware(), handlers.ListUsers)
			users.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			users.GET("/subscriptions", middleware.AuthMiddleware(), handlers.ListSubscriptions)
			users.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetUser)
			users.POST("/:id/subscribe", middleware.AuthMiddleware(), handlers.Subscribe)
			users.DELETE("/:id/subscribe", middleware.AuthMiddleware(), handlers.Unsubscribe)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", handlers.ListTags)
			tags.GET("/:id", handlers.GetTag)
			tags.POST("", middleware.AuthMiddleware(), handlers.CreateTag)
		}

		ingredients := api.Group("/ingredients")
		{
			ingredients.GET("", handlers.ListIngredients)
			ingredients.GET("/:id", handlers.GetIngredient)
			ingredients.POST("", middleware.AuthMiddleware(), handlers.CreateIngredient)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("", middleware.OptionalAuthMiddleware(), handlers.ListRecipes)
			recipes.POST("", middleware.AuthMiddleware(), handlers.CreateRecipe)
			recipes.GET("/download_shopping_cart", middleware.AuthMiddleware(), handlers.DownloadShoppingCart)
			recipes.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetRecipe)
			recipes.PUT("/:id", middleware.AuthMiddleware(), handlers.UpdateRecipe)
			recipes.PATCH("/:id", middleware.AuthMiddleware(), handlers.UpdateRecipe)
			recipes.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteRecipe)

			recipes.POST("/:id/favorite", middleware.AuthMiddleware(), handlers.FavoriteRecipe)
			recipes.DELETE("/:id/favorite", middleware.AuthMiddleware(), handlers.UnfavoriteRecipe)
			recipes.POST("/:id/shopping_cart", middleware.AuthMiddleware(), handlers.AddRecipeToCart)
			recipes.DELETE("/:id/shopping_cart", middleware.AuthMiddleware(), handlers.RemoveRecipeFromCart)
		}
	}

	return r
}
