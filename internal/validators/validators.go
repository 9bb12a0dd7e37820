package validators

import "fmt"

const (
	MinCookingTime = 1
	MaxCookingTime = 1440
)

// FieldError is a validation failure scoped to a single request field.
// All validation runs before any store mutation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IngredientItem is an ingredient line item as submitted by the client.
type IngredientItem struct {
	ID     uint    `json:"id" binding:"required"`
	Amount float64 `json:"amount"`
}

// ValidateAmount requires an ingredient quantity to be strictly positive.
func ValidateAmount(value float64) error {
	if value <= 0 {
		return &FieldError{Field: "amount", Message: "Ingredient amount must be greater than 0"}
	}

	return nil
}

func ValidateCookingTime(value int) error {
	if value < MinCookingTime || value > MaxCookingTime {
		return &FieldError{
			Field:   "cooking_time",
			Message: fmt.Sprintf("Cooking time must be between %d and %d minutes", MinCookingTime, MaxCookingTime),
		}
	}

	return nil
}

func ValidateNoDuplicateIngredients(items []IngredientItem) error {
	seen := make(map[uint]struct{}, len(items))

	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return &FieldError{Field: "ingredients", Message: "Ingredients cannot repeat within a recipe"}
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}

// ValidateRecipePayload applies every write-path rule across the full
// payload: completeness, per-item amounts, duplicates and cooking time.
func ValidateRecipePayload(image string, tagIDs []uint, items []IngredientItem, cookingTime int) error {
	if image == "" {
		return &FieldError{Field: "image", Message: "An image is required"}
	}

	if len(tagIDs) == 0 {
		return &FieldError{Field: "tags", Message: "At least one tag is required"}
	}

	if len(items) == 0 {
		return &FieldError{Field: "ingredients", Message: "At least one ingredient is required"}
	}

	for _, item := range items {
		if err := ValidateAmount(item.Amount); err != nil {
			return err
		}
	}

	if err := ValidateNoDuplicateIngredients(items); err != nil {
		return err
	}

	return ValidateCookingTime(cookingTime)
}
