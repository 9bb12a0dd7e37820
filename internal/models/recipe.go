package models

type Recipe struct {
	BaseModel

	AuthorID    uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Image       string `gorm:"type:text;not null"` // base64 data URI
	Text        string `gorm:"not null"`
	CookingTime int    `gorm:"not null"` // minutes, 1-1440

	// Relationships
	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
