package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/filters"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/foodshare-dev/foodshare/internal/serializers"
	"github.com/foodshare-dev/foodshare/internal/utils"
	"github.com/foodshare-dev/foodshare/internal/validators"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RecipeWriteRequest struct {
	Name        string                      `json:"name" binding:"required"`
	Text        string                      `json:"text" binding:"required"`
	Image       string                      `json:"image"`
	CookingTime int                         `json:"cooking_time" binding:"required"`
	Tags        []uint                      `json:"tags"`
	Ingredients []validators.IngredientItem `json:"ingredients"`
}

func ListRecipes(ctx *gin.Context) {
	viewerID := utils.GetViewerID(ctx)

	filter := filters.RecipeFilter{
		IsFavorited:      boolQuery(ctx, "is_favorited"),
		IsInShoppingCart: boolQuery(ctx, "is_in_shopping_cart"),
		TagSlugs:         ctx.QueryArray("tags"),
	}

	if author := ctx.Query("author"); author != "" {
		authorID, err := strconv.ParseUint(author, 10, 32)

		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "author must be a numeric id"})
			return
		}

		filter.AuthorID = uint(authorID)
	}

	page, limit := paginationParams(ctx)

	base := filters.ApplyRecipeFilter(db.DB.Model(&models.Recipe{}), filter, viewerID)

	var total int64

	if err := base.Count(&total).Error; err != nil {
		logrus.Errorf("Failed to count recipes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	var recipes []models.Recipe

	query := filters.ApplyRecipeFilter(recipeQuery(), filter, viewerID)

	if err := filters.ApplyRecipeOrdering(query).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		logrus.Errorf("Failed to list recipes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}

	results := make([]serializers.RecipeResponse, 0, len(recipes))

	for _, recipe := range recipes {
		results = append(results, serializers.NewRecipeResponse(db.DB, recipe, viewerID))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

func GetRecipe(ctx *gin.Context) {
	viewerID := utils.GetViewerID(ctx)

	recipe, ok := findRecipe(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewRecipeResponse(db.DB, recipe, viewerID))
}

func CreateRecipe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	req, tags, ok := bindRecipeWrite(ctx)

	if !ok {
		return
	}

	recipe := models.Recipe{
		AuthorID:    currentUser.ID,
		Name:        req.Name,
		Image:       req.Image,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		return replaceRecipeRelations(tx, &recipe, tags, req.Ingredients)
	})

	if err != nil {
		logrus.Errorf("Failed to create recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	respondWithRecipe(ctx, http.StatusCreated, recipe.ID, currentUser.ID)
}

func UpdateRecipe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var recipe models.Recipe

	if err := db.DB.First(&recipe, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			logrus.Errorf("Failed to fetch recipe: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		}
		return
	}

	if recipe.AuthorID != currentUser.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author can modify a recipe"})
		return
	}

	req, tags, ok := bindRecipeWrite(ctx)

	if !ok {
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         req.Name,
			"image":        req.Image,
			"text":         req.Text,
			"cooking_time": req.CookingTime,
		}

		if err := tx.Model(&recipe).Updates(updates).Error; err != nil {
			return err
		}

		return replaceRecipeRelations(tx, &recipe, tags, req.Ingredients)
	})

	if err != nil {
		logrus.Errorf("Failed to update recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	respondWithRecipe(ctx, http.StatusOK, recipe.ID, currentUser.ID)
}

func DeleteRecipe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, ok := findRecipe(ctx)

	if !ok {
		return
	}

	if recipe.AuthorID != currentUser.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only the author can delete a recipe"})
		return
	}

	if err := db.DB.Delete(&models.Recipe{}, recipe.ID).Error; err != nil {
		logrus.Errorf("Failed to delete recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindRecipeWrite binds and fully validates a recipe write payload before
// any mutation: field rules, referenced tags and referenced ingredients.
func bindRecipeWrite(ctx *gin.Context) (RecipeWriteRequest, []models.Tag, bool) {
	var req RecipeWriteRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return RecipeWriteRequest{}, nil, false
	}

	if err := validators.ValidateRecipePayload(req.Image, req.Tags, req.Ingredients, req.CookingTime); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return RecipeWriteRequest{}, nil, false
	}

	if !validImage(req.Image) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "image: must be base64-encoded"})
		return RecipeWriteRequest{}, nil, false
	}

	var tags []models.Tag

	if err := db.DB.Where("id IN ?", req.Tags).Find(&tags).Error; err != nil {
		logrus.Errorf("Failed to fetch tags: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate tags"})
		return RecipeWriteRequest{}, nil, false
	}

	if len(tags) != len(uniqueIDs(req.Tags)) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "tags: unknown tag id"})
		return RecipeWriteRequest{}, nil, false
	}

	ingredientIDs := make([]uint, 0, len(req.Ingredients))

	for _, item := range req.Ingredients {
		ingredientIDs = append(ingredientIDs, item.ID)
	}

	var ingredientCount int64

	if err := db.DB.Model(&models.Ingredient{}).
		Where("id IN ?", ingredientIDs).
		Count(&ingredientCount).Error; err != nil {
		logrus.Errorf("Failed to fetch ingredients: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate ingredients"})
		return RecipeWriteRequest{}, nil, false
	}

	if ingredientCount != int64(len(ingredientIDs)) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ingredients: unknown ingredient id"})
		return RecipeWriteRequest{}, nil, false
	}

	return req, tags, true
}

// replaceRecipeRelations atomically swaps the recipe's tag set and its
// ingredient line items for the submitted ones. Runs inside the caller's
// transaction so a failure rolls back every part of the write.
func replaceRecipeRelations(tx *gorm.DB, recipe *models.Recipe, tags []models.Tag, items []validators.IngredientItem) error {
	if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
		return err
	}

	if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}

	lineItems := make([]models.RecipeIngredient, 0, len(items))

	for _, item := range items {
		lineItems = append(lineItems, models.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}

	return tx.Create(&lineItems).Error
}

func respondWithRecipe(ctx *gin.Context, status int, recipeID uint, viewerID uint) {
	var recipe models.Recipe

	if err := recipeQuery().First(&recipe, recipeID).Error; err != nil {
		logrus.Errorf("Failed to reload recipe: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		return
	}

	ctx.JSON(status, serializers.NewRecipeResponse(db.DB, recipe, viewerID))
}

func findRecipe(ctx *gin.Context) (models.Recipe, bool) {
	var recipe models.Recipe

	if err := recipeQuery().First(&recipe, "recipes.id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		} else {
			logrus.Errorf("Failed to fetch recipe: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipe"})
		}
		return models.Recipe{}, false
	}

	return recipe, true
}

func recipeQuery() *gorm.DB {
	return db.DB.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient")
}

func boolQuery(ctx *gin.Context, name string) bool {
	value := ctx.Query(name)

	return value == "1" || strings.EqualFold(value, "true")
}

// validImage accepts a bare base64 payload or a data URI with a base64
// payload after the comma.
func validImage(image string) bool {
	payload := image

	if strings.HasPrefix(image, "data:") {
		index := strings.Index(image, ",")

		if index < 0 {
			return false
		}

		payload = image[index+1:]
	}

	_, err := base64.StdEncoding.DecodeString(payload)

	return err == nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
