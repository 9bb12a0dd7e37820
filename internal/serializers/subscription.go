package serializers

import (
	"github.com/foodshare-dev/foodshare/internal/models"
	"gorm.io/gorm"
)

// SubscriptionResponse represents a followed author together with a
// bounded preview of their recipes.
type SubscriptionResponse struct {
	UserResponse

	RecipesCount int64                 `json:"recipes_count"`
	Recipes      []RecipeShortResponse `json:"recipes"`
}

// NewSubscriptionResponse builds the subscribed-author representation.
// recipesLimit bounds the embedded recipe preview and must already be
// validated by the caller.
func NewSubscriptionResponse(database *gorm.DB, author models.User, viewerID uint, recipesLimit int) (SubscriptionResponse, error) {
	response := SubscriptionResponse{
		UserResponse: NewUserResponse(database, author, viewerID),
	}

	if err := database.Model(&models.Recipe{}).
		Where("author_id = ?", author.ID).
		Count(&response.RecipesCount).Error; err != nil {
		return SubscriptionResponse{}, err
	}

	var recipes []models.Recipe

	if err := database.
		Where("author_id = ?", author.ID).
		Order("created_at DESC, id DESC").
		Limit(recipesLimit).
		Find(&recipes).Error; err != nil {
		return SubscriptionResponse{}, err
	}

	response.Recipes = make([]RecipeShortResponse, 0, len(recipes))

	for _, recipe := range recipes {
		response.Recipes = append(response.Recipes, NewRecipeShortResponse(recipe))
	}

	return response, nil
}
