package filters

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/foodshare-dev/foodshare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB returns a gorm handle that builds SQL without executing it,
// backed by sqlmock so no real connection is needed.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return gdb
}

func buildRecipeSQL(t *testing.T, filter RecipeFilter, viewerID uint) (string, []interface{}) {
	t.Helper()

	gdb := newDryRunDB(t)

	var recipes []models.Recipe

	stmt := ApplyRecipeFilter(gdb.Model(&models.Recipe{}), filter, viewerID).
		Find(&recipes).Statement

	return stmt.SQL.String(), stmt.Vars
}

func TestRecipeFilterNoPredicates(t *testing.T) {
	sql, _ := buildRecipeSQL(t, RecipeFilter{}, 0)

	assert.NotContains(t, sql, "favorites")
	assert.NotContains(t, sql, "shopping_cart_entries")
	assert.NotContains(t, sql, "recipe_tags")
}

func TestRecipeFilterFavorited(t *testing.T) {
	sql, vars := buildRecipeSQL(t, RecipeFilter{IsFavorited: true}, 7)

	assert.Contains(t, sql, "SELECT recipe_id FROM favorites WHERE user_id =")
	assert.Contains(t, vars, uint(7))
}

func TestRecipeFilterFavoritedAnonymousIsNoOp(t *testing.T) {
	sql, _ := buildRecipeSQL(t, RecipeFilter{IsFavorited: true, IsInShoppingCart: true}, 0)

	assert.NotContains(t, sql, "favorites")
	assert.NotContains(t, sql, "shopping_cart_entries")
}

func TestRecipeFilterInShoppingCart(t *testing.T) {
	sql, vars := buildRecipeSQL(t, RecipeFilter{IsInShoppingCart: true}, 3)

	assert.Contains(t, sql, "SELECT recipe_id FROM shopping_cart_entries WHERE user_id =")
	assert.Contains(t, vars, uint(3))
}

func TestRecipeFilterTagSlugsUnion(t *testing.T) {
	sql, vars := buildRecipeSQL(t, RecipeFilter{TagSlugs: []string{"breakfast", "vegan"}}, 0)

	assert.Contains(t, sql, "t.slug IN")
	assert.Contains(t, vars, "breakfast")
	assert.Contains(t, vars, "vegan")
}

func TestRecipeFilterAuthor(t *testing.T) {
	sql, vars := buildRecipeSQL(t, RecipeFilter{AuthorID: 42}, 0)

	assert.Contains(t, sql, "recipes.author_id =")
	assert.Contains(t, vars, uint(42))
}

func TestRecipeOrderingNewestFirst(t *testing.T) {
	gdb := newDryRunDB(t)

	var recipes []models.Recipe

	stmt := ApplyRecipeOrdering(gdb.Model(&models.Recipe{})).Find(&recipes).Statement

	assert.Contains(t, stmt.SQL.String(), "recipes.created_at DESC, recipes.id DESC")
}

func TestIngredientSearchLowercasesPrefix(t *testing.T) {
	gdb := newDryRunDB(t)

	var ingredients []models.Ingredient

	stmt := ApplyIngredientSearch(gdb.Model(&models.Ingredient{}), "Oni").
		Find(&ingredients).Statement

	assert.Contains(t, stmt.SQL.String(), "LOWER(name) LIKE")
	assert.Contains(t, stmt.Vars, "oni%")
}

func TestIngredientSearchEmptyQueryIsNoOp(t *testing.T) {
	gdb := newDryRunDB(t)

	var ingredients []models.Ingredient

	stmt := ApplyIngredientSearch(gdb.Model(&models.Ingredient{}), "").
		Find(&ingredients).Statement

	assert.NotContains(t, stmt.SQL.String(), "LIKE")
}
