package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/foodshare-dev/foodshare/internal/serializers"
	"github.com/foodshare-dev/foodshare/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxRecipesLimit = 100

// parseRecipesLimit reads the required recipes_limit query parameter
// bounding the recipe preview embedded in subscription responses.
func parseRecipesLimit(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("recipes_limit")

	limit, err := strconv.Atoi(raw)

	if err != nil || limit < 1 || limit > maxRecipesLimit {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "recipes_limit must be an integer between 1 and 100",
		})
		return 0, false
	}

	return limit, true
}

func ListUsers(ctx *gin.Context) {
	viewerID := utils.GetViewerID(ctx)

	var users []models.User

	if err := db.DB.Order("id").Find(&users).Error; err != nil {
		logrus.Errorf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]serializers.UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, serializers.NewUserResponse(db.DB, user, viewerID))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetUser(ctx *gin.Context) {
	viewerID := utils.GetViewerID(ctx)

	var user models.User

	if err := db.DB.First(&user, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logrus.Errorf("Failed to fetch user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	ctx.JSON(http.StatusOK, serializers.NewUserResponse(db.DB, user, viewerID))
}

func Subscribe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipesLimit, ok := parseRecipesLimit(ctx)

	if !ok {
		return
	}

	var author models.User

	if err := db.DB.First(&author, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logrus.Errorf("Failed to fetch author: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	if author.ID == currentUser.ID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot subscribe to yourself"})
		return
	}

	subscription := models.Subscription{
		UserID:   currentUser.ID,
		AuthorID: author.ID,
	}

	if err := db.DB.Create(&subscription).Error; err != nil {
		if db.IsUniqueViolation(err) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Already subscribed"})
			return
		}
		logrus.Errorf("Failed to create subscription: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	response, err := serializers.NewSubscriptionResponse(db.DB, author, currentUser.ID, recipesLimit)

	if err != nil {
		logrus.Errorf("Failed to serialize subscription: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

func Unsubscribe(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result := db.DB.
		Where("user_id = ? AND author_id = ?", currentUser.ID, ctx.Param("id")).
		Delete(&models.Subscription{})

	if result.Error != nil {
		logrus.Errorf("Failed to delete subscription: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func ListSubscriptions(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipesLimit, ok := parseRecipesLimit(ctx)

	if !ok {
		return
	}

	page, limit := paginationParams(ctx)

	var total int64

	if err := db.DB.Model(&models.Subscription{}).
		Where("user_id = ?", currentUser.ID).
		Count(&total).Error; err != nil {
		logrus.Errorf("Failed to count subscriptions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscriptions"})
		return
	}

	var authors []models.User

	if err := db.DB.
		Where("id IN (SELECT author_id FROM subscriptions WHERE user_id = ?)", currentUser.ID).
		Order("id").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&authors).Error; err != nil {
		logrus.Errorf("Failed to list subscriptions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscriptions"})
		return
	}

	results := make([]serializers.SubscriptionResponse, 0, len(authors))

	for _, author := range authors {
		response, err := serializers.NewSubscriptionResponse(db.DB, author, currentUser.ID, recipesLimit)

		if err != nil {
			logrus.Errorf("Failed to serialize subscription: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscriptions"})
			return
		}

		results = append(results, response)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":   total,
		"results": results,
	})
}

// paginationParams reads page/limit query parameters with sane defaults.
func paginationParams(ctx *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))

	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	if err != nil || limit < 1 || limit > maxRecipesLimit {
		limit = 10
	}

	return page, limit
}
