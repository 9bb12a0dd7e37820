package serializers

import (
	"github.com/foodshare-dev/foodshare/internal/models"
	"gorm.io/gorm"
)

type TagResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type IngredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredientResponse is a line item joined with its ingredient's
// name and unit. ID is the ingredient's id, not the join row's.
type RecipeIngredientResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	MeasurementUnit string  `json:"measurement_unit"`
	Amount          float64 `json:"amount"`
}

type RecipeResponse struct {
	ID          uint                       `json:"id"`
	Author      UserResponse               `json:"author"`
	Name        string                     `json:"name"`
	Image       string                     `json:"image"`
	Text        string                     `json:"text"`
	CookingTime int                        `json:"cooking_time"`
	Tags        []TagResponse              `json:"tags"`
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
	// Omitted entirely for anonymous viewers.
	IsFavorited      *bool `json:"is_favorited,omitempty"`
	IsInShoppingCart *bool `json:"is_in_shopping_cart,omitempty"`
}

// RecipeShortResponse is the minimal projection embedded in favorite,
// shopping cart and subscription responses.
type RecipeShortResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CookingTime int    `json:"cooking_time"`
	Image       string `json:"image"`
}

func NewTagResponse(tag models.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func NewIngredientResponse(ingredient models.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func NewRecipeShortResponse(recipe models.Recipe) RecipeShortResponse {
	return RecipeShortResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		CookingTime: recipe.CookingTime,
		Image:       recipe.Image,
	}
}

// NewRecipeResponse builds the full nested representation. The recipe must
// be loaded with Author, Tags and Ingredients.Ingredient preloaded.
func NewRecipeResponse(database *gorm.DB, recipe models.Recipe, viewerID uint) RecipeResponse {
	tags := make([]TagResponse, 0, len(recipe.Tags))

	for _, tag := range recipe.Tags {
		tags = append(tags, NewTagResponse(tag))
	}

	ingredients := make([]RecipeIngredientResponse, 0, len(recipe.Ingredients))

	for _, item := range recipe.Ingredients {
		ingredients = append(ingredients, RecipeIngredientResponse{
			ID:              item.IngredientID,
			Name:            item.Ingredient.Name,
			MeasurementUnit: item.Ingredient.MeasurementUnit,
			Amount:          item.Amount,
		})
	}

	response := RecipeResponse{
		ID:          recipe.ID,
		Author:      NewUserResponse(database, recipe.Author, viewerID),
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if viewerID != 0 {
		favorited := exists(database.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID))
		inCart := exists(database.Model(&models.ShoppingCartEntry{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID))
		response.IsFavorited = &favorited
		response.IsInShoppingCart = &inCart
	}

	return response
}
