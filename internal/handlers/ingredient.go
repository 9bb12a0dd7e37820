package handlers

import (
	"errors"
	"net/http"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/filters"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/foodshare-dev/foodshare/internal/serializers"
	"github.com/foodshare-dev/foodshare/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateIngredientRequest struct {
	Name            string `json:"name" binding:"required"`
	MeasurementUnit string `json:"measurement_unit" binding:"required"`
}

func ListIngredients(ctx *gin.Context) {
	query := filters.ApplyIngredientSearch(db.DB.Model(&models.Ingredient{}), ctx.Query("name"))

	var ingredients []models.Ingredient

	if err := query.Order("name").Find(&ingredients).Error; err != nil {
		logrus.Errorf("Failed to list ingredients: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredients"})
		return
	}

	response := make([]serializers.IngredientResponse, 0, len(ingredients))

	for _, ingredient := range ingredients {
		response = append(response, serializers.NewIngredientResponse(ingredient))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetIngredient(ctx *gin.Context) {
	var ingredient models.Ingredient

	if err := db.DB.First(&ingredient, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		} else {
			logrus.Errorf("Failed to fetch ingredient: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ingredient"})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewIngredientResponse(ingredient))
}

// CreateIngredient seeds reference data. Restricted to superusers.
func CreateIngredient(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsSuperuser {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only administrators can create ingredients"})
		return
	}

	var req CreateIngredientRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ingredient := models.Ingredient{
		Name:            req.Name,
		MeasurementUnit: req.MeasurementUnit,
	}

	if err := db.DB.Create(&ingredient).Error; err != nil {
		logrus.Errorf("Failed to create ingredient: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewIngredientResponse(ingredient))
}
