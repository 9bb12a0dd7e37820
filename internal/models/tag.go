package models

// Tag is reference data seeded at setup and never mutated by regular users.
type Tag struct {
	BaseModel

	Name  string `gorm:"not null"`
	Color string `gorm:"not null"` // hex color code, e.g. "#FF0000"
	Slug  string `gorm:"uniqueIndex;not null"`
}
