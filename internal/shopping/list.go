package shopping

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// ListItem is one aggregated shopping list line: all cart recipes'
// quantities of the same (ingredient name, unit) summed together.
type ListItem struct {
	Name            string
	MeasurementUnit string
	TotalAmount     float64
}

// BuildList aggregates ingredient quantities across every recipe in
// userID's shopping cart, grouped by ingredient name and unit.
func BuildList(database *gorm.DB, userID uint) ([]ListItem, error) {
	var items []ListItem

	err := database.Table("recipe_ingredients").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("recipe_ingredients.recipe_id IN (SELECT recipe_id FROM shopping_cart_entries WHERE user_id = ?)", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

// Render produces the plain-text document, one line per item:
// "<name> | <unit> | <total_amount>".
func Render(items []ListItem) string {
	lines := make([]string, 0, len(items))

	for _, item := range items {
		lines = append(lines, fmt.Sprintf(
			"%s | %s | %s",
			item.Name,
			item.MeasurementUnit,
			strconv.FormatFloat(item.TotalAmount, 'f', -1, 64),
		))
	}

	return strings.Join(lines, "\n")
}
