package domain

import (
	"fmt"
	"strings"
)

type MealKey string
type HouseholdKey string

// MealDefinition is a catalog row. The catalog is authored externally and
// read-only to the arbiter.
type MealDefinition struct {
	Key              MealKey
	Title            string
	Active           bool
	Steps            string
	EstimatedMinutes int
}

// IngredientRow is a meal-ingredient join row.
type IngredientRow struct {
	MealKey      MealKey
	Name         string
	PantryStaple bool
}

func (m MealDefinition) Validate() error {
	if strings.TrimSpace(string(m.Key)) == "" {
		return fmt.Errorf("key is required")
	}
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if m.EstimatedMinutes < 0 {
		return fmt.Errorf("estimated minutes must not be negative")
	}

	return nil
}

// SafeCoreMealKeys are the meals guaranteed to work from an empty inventory
// (pantry staples only). Seeding writes them; ValidateSafeCore checks they
// resolve to active catalog entries.
var SafeCoreMealKeys = [10]MealKey{
	"buttered-noodles",
	"rice-and-eggs",
	"quesadilla",
	"grilled-cheese",
	"peanut-butter-toast",
	"pasta-olive-oil-garlic",
	"oatmeal-bowl",
	"bean-and-rice-bowl",
	"fried-rice-basic",
	"tomato-soup-toast",
}

func ValidateSafeCore(catalog []MealDefinition) error {
	byKey := make(map[MealKey]MealDefinition, len(catalog))
	for _, meal := range catalog {
		byKey[meal.Key] = meal
	}

	var missing []string
	for _, key := range SafeCoreMealKeys {
		meal, ok := byKey[key]
		if !ok || !meal.Active {
			missing = append(missing, string(key))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("safe core meals missing or inactive in catalog: %s", strings.Join(missing, ", "))
	}

	return nil
}

// IngredientsFor filters join rows down to one meal, preserving row order.
func IngredientsFor(key MealKey, rows []IngredientRow) []IngredientRow {
	var out []IngredientRow
	for _, row := range rows {
		if row.MealKey == key {
			out = append(out, row)
		}
	}

	return out
}
