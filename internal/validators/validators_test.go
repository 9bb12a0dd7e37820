package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(0.5))
	assert.NoError(t, ValidateAmount(100))

	err := ValidateAmount(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")

	assert.Error(t, ValidateAmount(-3))
}

func TestValidateCookingTime(t *testing.T) {
	assert.NoError(t, ValidateCookingTime(1))
	assert.NoError(t, ValidateCookingTime(1440))

	assert.Error(t, ValidateCookingTime(0))
	assert.Error(t, ValidateCookingTime(1441))
	assert.Error(t, ValidateCookingTime(-10))
}

func TestValidateNoDuplicateIngredients(t *testing.T) {
	assert.NoError(t, ValidateNoDuplicateIngredients(nil))
	assert.NoError(t, ValidateNoDuplicateIngredients([]IngredientItem{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 150},
	}))

	err := ValidateNoDuplicateIngredients([]IngredientItem{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 150},
		{ID: 1, Amount: 50},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingredients")
}

func TestValidateRecipePayload(t *testing.T) {
	image := "aGVsbG8="
	tags := []uint{1}
	items := []IngredientItem{{ID: 1, Amount: 100}}

	assert.NoError(t, ValidateRecipePayload(image, tags, items, 30))

	t.Run("missing image", func(t *testing.T) {
		err := ValidateRecipePayload("", tags, items, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "image")
	})

	t.Run("empty tag list", func(t *testing.T) {
		err := ValidateRecipePayload(image, nil, items, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tags")
	})

	t.Run("empty ingredient list", func(t *testing.T) {
		err := ValidateRecipePayload(image, tags, nil, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ingredients")
	})

	t.Run("non-positive amount", func(t *testing.T) {
		err := ValidateRecipePayload(image, tags, []IngredientItem{{ID: 1, Amount: 0}}, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("duplicate ingredient", func(t *testing.T) {
		duplicated := []IngredientItem{
			{ID: 7, Amount: 100},
			{ID: 7, Amount: 200},
		}
		err := ValidateRecipePayload(image, tags, duplicated, 30)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repeat")
	})

	t.Run("cooking time out of range", func(t *testing.T) {
		err := ValidateRecipePayload(image, tags, items, 2000)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cooking_time")
	})
}
