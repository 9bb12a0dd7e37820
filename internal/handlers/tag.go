package handlers

import (
	"errors"
	"net/http"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/foodshare-dev/foodshare/internal/serializers"
	"github.com/foodshare-dev/foodshare/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
}

func ListTags(ctx *gin.Context) {
	var tags []models.Tag

	if err := db.DB.Order("id").Find(&tags).Error; err != nil {
		logrus.Errorf("Failed to list tags: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tags"})
		return
	}

	response := make([]serializers.TagResponse, 0, len(tags))

	for _, tag := range tags {
		response = append(response, serializers.NewTagResponse(tag))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetTag(ctx *gin.Context) {
	var tag models.Tag

	if err := db.DB.First(&tag, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		} else {
			logrus.Errorf("Failed to fetch tag: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tag"})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewTagResponse(tag))
}

// CreateTag seeds reference data. Restricted to superusers.
func CreateTag(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !currentUser.IsSuperuser {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only administrators can create tags"})
		return
	}

	var req CreateTagRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tag := models.Tag{
		Name:  req.Name,
		Color: req.Color,
		Slug:  req.Slug,
	}

	if err := db.DB.Create(&tag).Error; err != nil {
		if db.IsUniqueViolation(err) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Tag slug already exists"})
			return
		}
		logrus.Errorf("Failed to create tag: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}

	ctx.JSON(http.StatusCreated, serializers.NewTagResponse(tag))
}
