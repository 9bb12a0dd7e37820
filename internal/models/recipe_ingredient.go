package models

// RecipeIngredient is a line item of a recipe. Rows are owned by the
// parent recipe and replaced wholesale on update, never patched.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey"`
	RecipeID     uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	IngredientID uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient"`
	Amount       float64 `gorm:"not null"` // strictly > 0

	// Relationships
	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
