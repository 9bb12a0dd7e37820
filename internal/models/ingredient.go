package models

// Ingredient is reference data seeded at setup; recipes reference it
// through RecipeIngredient.
type Ingredient struct {
	BaseModel

	Name            string `gorm:"not null;index"`
	MeasurementUnit string `gorm:"not null"`
}
