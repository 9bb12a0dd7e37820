package handlers

import (
	"net/http"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/foodshare-dev/foodshare/internal/serializers"
	"github.com/foodshare-dev/foodshare/internal/shopping"
	"github.com/foodshare-dev/foodshare/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func FavoriteRecipe(ctx *gin.Context) {
	addJoinRow(ctx, func(userID, recipeID uint) error {
		return db.DB.Create(&models.Favorite{UserID: userID, RecipeID: recipeID}).Error
	}, "Recipe is already in favorites")
}

func UnfavoriteRecipe(ctx *gin.Context) {
	removeJoinRow(ctx, &models.Favorite{}, "Recipe is not in favorites")
}

func AddRecipeToCart(ctx *gin.Context) {
	addJoinRow(ctx, func(userID, recipeID uint) error {
		return db.DB.Create(&models.ShoppingCartEntry{UserID: userID, RecipeID: recipeID}).Error
	}, "Recipe is already in the shopping cart")
}

func RemoveRecipeFromCart(ctx *gin.Context) {
	removeJoinRow(ctx, &models.ShoppingCartEntry{}, "Recipe is not in the shopping cart")
}

// DownloadShoppingCart renders the viewer's aggregated shopping list as a
// plain-text attachment, one line per (ingredient, unit) group.
func DownloadShoppingCart(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := shopping.BuildList(db.DB, currentUser.ID)

	if err != nil {
		logrus.Errorf("Failed to build shopping list: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build shopping list"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(shopping.Render(items)))
}

// addJoinRow implements the POST half of a (user, recipe) toggle. The
// store's unique constraint is the sole concurrency guard: duplicate
// inserts, including racing ones, surface as 409.
func addJoinRow(ctx *gin.Context, create func(userID, recipeID uint) error, conflictMessage string) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, ok := findRecipe(ctx)

	if !ok {
		return
	}

	if err := create(currentUser.ID, recipe.ID); err != nil {
		if db.IsUniqueViolation(err) {
			ctx.JSON(http.StatusConflict, gin.H{"error": conflictMessage})
			return
		}
		logrus.Errorf("Failed to create join row: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewRecipeShortResponse(recipe))
}

// removeJoinRow implements the DELETE half of a (user, recipe) toggle.
func removeJoinRow(ctx *gin.Context, model interface{}, missingMessage string) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result := db.DB.
		Where("user_id = ? AND recipe_id = ?", currentUser.ID, ctx.Param("id")).
		Delete(model)

	if result.Error != nil {
		logrus.Errorf("Failed to delete join row: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": missingMessage})
		return
	}

	ctx.Status(http.StatusNoContent)
}
