package handlers

import (
	"net/http"
	"testing"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/foodshare-dev/foodshare/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeToSelfFails(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "loner")

	ctx, w := newTestContext(t, "POST", "/api/users/1/subscribe?recipes_limit=3", nil, &user)
	setParamID(ctx, user.ID)
	Subscribe(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.DB.Model(&models.Subscription{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubscribeRequiresRecipesLimit(t *testing.T) {
	setupTestDB(t)

	follower := createTestUser(t, "follower")
	author := createTestUser(t, "author")

	// Missing parameter.
	ctx, w := newTestContext(t, "POST", "/api/users/1/subscribe", nil, &follower)
	setParamID(ctx, author.ID)
	Subscribe(ctx)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric parameter.
	ctx, w = newTestContext(t, "POST", "/api/users/1/subscribe?recipes_limit=lots", nil, &follower)
	setParamID(ctx, author.ID)
	Subscribe(ctx)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscribeTwiceConflicts(t *testing.T) {
	setupTestDB(t)

	follower := createTestUser(t, "follower")
	author := createTestUser(t, "author")

	ctx, w := newTestContext(t, "POST", "/api/users/1/subscribe?recipes_limit=3", nil, &follower)
	setParamID(ctx, author.ID)
	Subscribe(ctx)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	ctx, w = newTestContext(t, "POST", "/api/users/1/subscribe?recipes_limit=3", nil, &follower)
	setParamID(ctx, author.ID)
	Subscribe(ctx)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnsubscribeMissingSubscription(t *testing.T) {
	setupTestDB(t)

	follower := createTestUser(t, "follower")
	author := createTestUser(t, "author")

	ctx, w := newTestContext(t, "DELETE", "/api/users/1/subscribe", nil, &follower)
	setParamID(ctx, author.ID)
	Unsubscribe(ctx)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubscriptionsListEmbedsLimitedRecipes(t *testing.T) {
	setupTestDB(t)

	follower := createTestUser(t, "follower")
	author := createTestUser(t, "author")
	tag := createTestTag(t, "breakfast")
	flour := createTestIngredient(t, "flour", "g")

	for _, name := range []string{"Pancakes", "Bread", "Stew"} {
		payload := recipePayload(tag, validators.IngredientItem{ID: flour.ID, Amount: 100})
		payload.Name = name
		createRecipeViaHandler(t, author, payload)
	}

	require.NoError(t, db.DB.Create(&models.Subscription{
		UserID:   follower.ID,
		AuthorID: author.ID,
	}).Error)

	ctx, w := newTestContext(t, "GET", "/api/users/subscriptions?recipes_limit=2", nil, &follower)
	ListSubscriptions(ctx)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])

	results := body["results"].([]interface{})
	require.Len(t, results, 1)

	entry := results[0].(map[string]interface{})
	assert.Equal(t, "author", entry["username"])
	assert.Equal(t, float64(3), entry["recipes_count"])
	assert.Len(t, entry["recipes"].([]interface{}), 2)
	assert.Equal(t, true, entry["is_subscribed"])
}

func TestCreateTagRequiresSuperuser(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "regular")

	payload := CreateTagRequest{Name: "Dinner", Color: "#0000FF", Slug: "dinner"}

	ctx, w := newTestContext(t, "POST", "/api/tags", payload, &user)
	CreateTag(ctx)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := models.User{
		Email:        "admin@example.com",
		Username:     "admin",
		FirstName:    "Ad",
		LastName:     "Min",
		PasswordHash: "not-a-real-hash",
		IsSuperuser:  true,
	}
	require.NoError(t, db.DB.Create(&admin).Error)

	ctx, w = newTestContext(t, "POST", "/api/tags", payload, &admin)
	CreateTag(ctx)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
