package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScoreMealThreeStaplesOneMissing(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	meal := MealDefinition{Key: "pantry-pasta", Title: "Pantry Pasta", Active: true}
	rows := []IngredientRow{
		{MealKey: "pantry-pasta", Name: "pasta", PantryStaple: true},
		{MealKey: "pantry-pasta", Name: "olive oil", PantryStaple: true},
		{MealKey: "pantry-pasta", Name: "garlic", PantryStaple: true},
		{MealKey: "pantry-pasta", Name: "fresh basil", PantryStaple: false},
	}

	score := ScoreMealByInventory(meal, rows, nil, now)
	assert.InDelta(t, 0.75, score, 1e-9)
}

func TestScoreMealOnlyUnmatchedNonStaplesIsZero(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	meal := MealDefinition{Key: "salmon-bowl", Title: "Salmon Bowl", Active: true}
	rows := []IngredientRow{
		{MealKey: "salmon-bowl", Name: "salmon", PantryStaple: false},
		{MealKey: "salmon-bowl", Name: "avocado", PantryStaple: false},
	}

	assert.Zero(t, ScoreMealByInventory(meal, rows, nil, now))
}

func TestScoreMealMatchedItemContributesDecayedConfidence(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	meal := MealDefinition{Key: "omelette", Title: "Omelette", Active: true}
	rows := []IngredientRow{
		{MealKey: "omelette", Name: "eggs", PantryStaple: false},
	}
	inventory := []InventoryItem{
		{Name: "Eggs", Confidence: 0.9, LastSeenAt: now.AddDate(0, 0, -10)},
	}

	// 0.9 * (1 - 10*0.03) = 0.63; name match is case-insensitive.
	assert.InDelta(t, 0.63, ScoreMealByInventory(meal, rows, inventory, now), 1e-9)
}

func TestScoreMealUnknownInventoryNamesAreIgnored(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	meal := MealDefinition{Key: "toast", Title: "Toast", Active: true}
	rows := []IngredientRow{
		{MealKey: "toast", Name: "bread", PantryStaple: true},
	}
	inventory := []InventoryItem{
		{Name: "mystery jar from the back of the fridge", Confidence: 0.4, LastSeenAt: now},
		{Name: "", Confidence: 0.9, LastSeenAt: now},
	}

	assert.NotPanics(t, func() {
		assert.InDelta(t, 1.0, ScoreMealByInventory(meal, rows, inventory, now), 1e-9)
	})
}

func TestScoreMealNoIngredientRowsScoresZero(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	meal := MealDefinition{Key: "empty", Title: "Empty", Active: true}

	assert.Zero(t, ScoreMealByInventory(meal, nil, nil, now))
}

func TestScoreMealDuplicateInventoryNamesPickHigherConfidence(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	meal := MealDefinition{Key: "omelette", Title: "Omelette", Active: true}
	rows := []IngredientRow{
		{MealKey: "omelette", Name: "eggs", PantryStaple: false},
	}

	forward := []InventoryItem{
		{Name: "eggs", Confidence: 0.3, LastSeenAt: now},
		{Name: "eggs", Confidence: 0.8, LastSeenAt: now},
	}
	reversed := []InventoryItem{forward[1], forward[0]}

	scoreForward := ScoreMealByInventory(meal, rows, forward, now)
	scoreReversed := ScoreMealByInventory(meal, rows, reversed, now)

	assert.InDelta(t, 0.8, scoreForward, 1e-9)
	assert.Equal(t, scoreForward, scoreReversed)
}

func TestScoreMealIgnoresOtherMealsRows(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	meal := MealDefinition{Key: "toast", Title: "Toast", Active: true}
	rows := []IngredientRow{
		{MealKey: "toast", Name: "bread", PantryStaple: true},
		{MealKey: "salmon-bowl", Name: "salmon", PantryStaple: false},
	}

	assert.InDelta(t, 1.0, ScoreMealByInventory(meal, rows, nil, now), 1e-9)
}
