package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/foodshare-dev/foodshare/db"
	"github.com/foodshare-dev/foodshare/internal/middleware"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/foodshare-dev/foodshare/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testImage = "data:image/png;base64,aGVsbG8="

// setupTestDB connects to the database named by TEST_DATABASE_URL and
// empties every table. Tests are skipped when the variable is unset.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")

	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gin.SetMode(gin.TestMode)

	require.NoError(t, db.ConnectDatabase(dsn))
	require.NoError(t, db.MigrateDatabase())

	tables := []string{
		"recipe_ingredients",
		"recipe_tags",
		"favorites",
		"shopping_cart_entries",
		"subscriptions",
		"recipes",
		"tags",
		"ingredients",
		"users",
	}

	for _, table := range tables {
		require.NoError(t, db.DB.Exec("DELETE FROM "+table).Error)
	}
}

func createTestUser(t *testing.T, username string) models.User {
	t.Helper()

	user := models.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.DB.Create(&user).Error)

	return user
}

func createTestTag(t *testing.T, slug string) models.Tag {
	t.Helper()

	tag := models.Tag{Name: slug, Color: "#00FF00", Slug: slug}
	require.NoError(t, db.DB.Create(&tag).Error)

	return tag
}

func createTestIngredient(t *testing.T, name, unit string) models.Ingredient {
	t.Helper()

	ingredient := models.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.DB.Create(&ingredient).Error)

	return ingredient
}

// newTestContext builds a gin context the way the middleware would have
// left it: request attached and, for authenticated calls, the user set.
func newTestContext(t *testing.T, method, target string, body interface{}, user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	var reader *bytes.Buffer

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req

	if user != nil {
		ctx.Set(types.ContextUserKey, middleware.AuthenticatedUser{
			ID:          user.ID,
			Email:       user.Email,
			Username:    user.Username,
			IsSuperuser: user.IsSuperuser,
		})
	}

	return ctx, w
}

func setParamID(ctx *gin.Context, id uint) {
	ctx.Params = gin.Params{{Key: "id", Value: jsonNumber(id)}}
}

func jsonNumber(id uint) string {
	payload, _ := json.Marshal(id)
	return string(payload)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))

	return decoded
}
