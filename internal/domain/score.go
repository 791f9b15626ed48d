package domain

import (
	"strings"
	"time"
)

// ScoreMealByInventory scores one meal against current inventory, in [0, 1].
// Pantry staples contribute 1.0 unconditionally; a matched inventory item
// contributes its decayed confidence; a missing ingredient contributes 0.
// Missing earns no partial credit. The final score is the mean over the
// meal's ingredient rows; a meal with no rows scores 0.
func ScoreMealByInventory(meal MealDefinition, rows []IngredientRow, inventory []InventoryItem, now time.Time) float64 {
	mealRows := IngredientsFor(meal.Key, rows)
	if len(mealRows) == 0 {
		return 0
	}

	byName := indexInventoryByName(inventory)

	total := 0.0
	for _, row := range mealRows {
		if row.PantryStaple {
			total += 1.0
			continue
		}

		item, ok := byName[normalizeIngredientName(row.Name)]
		if !ok {
			continue
		}
		total += item.DecayedConfidence(now)
	}

	return total / float64(len(mealRows))
}

// indexInventoryByName keys items by normalized name. When the same name was
// observed twice the higher-confidence row wins, so scoring stays
// deterministic regardless of input order.
func indexInventoryByName(inventory []InventoryItem) map[string]InventoryItem {
	byName := make(map[string]InventoryItem, len(inventory))
	for _, item := range inventory {
		name := normalizeIngredientName(item.Name)
		if name == "" {
			continue
		}
		existing, ok := byName[name]
		if ok && existing.Confidence >= item.Confidence {
			continue
		}
		byName[name] = item
	}

	return byName
}

func normalizeIngredientName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
