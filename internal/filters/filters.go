package filters

import (
	"strings"

	"gorm.io/gorm"
)

// RecipeFilter is the conjunction of optional recipe list predicates.
// Boolean flags are no-ops when false or when the viewer is anonymous.
type RecipeFilter struct {
	IsFavorited      bool
	IsInShoppingCart bool
	TagSlugs         []string
	AuthorID         uint
}

// ApplyRecipeFilter narrows a recipes query. Tag slugs are a union: a
// recipe matches when it carries at least one of the requested tags.
func ApplyRecipeFilter(query *gorm.DB, filter RecipeFilter, viewerID uint) *gorm.DB {
	if filter.IsFavorited && viewerID != 0 {
		query = query.Where(
			"recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)",
			viewerID,
		)
	}

	if filter.IsInShoppingCart && viewerID != 0 {
		query = query.Where(
			"recipes.id IN (SELECT recipe_id FROM shopping_cart_entries WHERE user_id = ?)",
			viewerID,
		)
	}

	if len(filter.TagSlugs) > 0 {
		query = query.Where(
			"recipes.id IN (SELECT rt.recipe_id FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE t.slug IN ?)",
			filter.TagSlugs,
		)
	}

	if filter.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}

	return query
}

// ApplyRecipeOrdering sorts newest first, with id as a stable tiebreaker.
func ApplyRecipeOrdering(query *gorm.DB) *gorm.DB {
	return query.Order("recipes.created_at DESC, recipes.id DESC")
}

// ApplyIngredientSearch restricts an ingredients query to names starting
// with name, case-insensitively. An empty query is a no-op.
func ApplyIngredientSearch(query *gorm.DB, name string) *gorm.DB {
	if name == "" {
		return query
	}

	return query.Where("LOWER(name) LIKE ?", strings.ToLower(name)+"%")
}
