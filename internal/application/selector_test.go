package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

func selectorCatalog() ([]domain.MealDefinition, []domain.IngredientRow) {
	meals := []domain.MealDefinition{
		{Key: "toast", Title: "Toast", Active: true, EstimatedMinutes: 5},
		{Key: "omelette", Title: "Omelette", Active: true, EstimatedMinutes: 15},
		{Key: "retired-dish", Title: "Retired Dish", Active: false, EstimatedMinutes: 60},
	}
	rows := []domain.IngredientRow{
		{MealKey: "toast", Name: "bread", PantryStaple: true},
		{MealKey: "omelette", Name: "eggs", PantryStaple: false},
		{MealKey: "retired-dish", Name: "truffles", PantryStaple: false},
	}

	return meals, rows
}

func cookEvent(id string, key domain.MealKey, decidedAt time.Time) domain.DecisionEvent {
	return domain.DecisionEvent{
		ID:           domain.EventID(id),
		Household:    "hh-1",
		DecidedAt:    decidedAt,
		DecisionType: domain.DecisionCook,
		MealKey:      &key,
		ContextHash:  "hash",
		UserAction:   domain.UserActionPending,
	}
}

func TestSelectCandidatePicksHighestScore(t *testing.T) {
	now := dinnerTime(t)
	meals, rows := selectorCatalog()
	inventory := []domain.InventoryItem{
		{Name: "eggs", Confidence: 0.95, LastSeenAt: now},
	}

	// toast scores 1.0 on a staple; omelette scores 0.95.
	selection := SelectCandidate(meals, rows, inventory, nil, now, 7)

	require.NotNil(t, selection.Meal)
	assert.Equal(t, domain.MealKey("toast"), selection.Meal.Key)
	assert.InDelta(t, 1.0, selection.Score, 1e-9)
	assert.False(t, selection.RotationReset)
}

func TestSelectCandidateSkipsInactiveMeals(t *testing.T) {
	now := dinnerTime(t)
	meals, rows := selectorCatalog()

	selection := SelectCandidate(meals, rows, nil, nil, now, 7)

	require.NotNil(t, selection.Meal)
	assert.NotEqual(t, domain.MealKey("retired-dish"), selection.Meal.Key)
}

func TestSelectCandidateRotationAvoidsRecentMeals(t *testing.T) {
	now := dinnerTime(t)
	meals, rows := selectorCatalog()
	history := []domain.DecisionEvent{
		cookEvent("evt-1", "toast", now.Add(-24*time.Hour)),
	}

	selection := SelectCandidate(meals, rows, nil, history, now, 7)

	require.NotNil(t, selection.Meal)
	assert.Equal(t, domain.MealKey("omelette"), selection.Meal.Key)
	assert.False(t, selection.RotationReset)
}

func TestSelectCandidateRotationExhaustionResets(t *testing.T) {
	now := dinnerTime(t)
	meals, rows := selectorCatalog()
	history := []domain.DecisionEvent{
		cookEvent("evt-1", "toast", now.Add(-24*time.Hour)),
		cookEvent("evt-2", "omelette", now.Add(-48*time.Hour)),
	}

	selection := SelectCandidate(meals, rows, nil, history, now, 7)

	require.NotNil(t, selection.Meal, "exhausted rotation must never mean no decision")
	assert.True(t, selection.RotationReset)
	assert.Equal(t, domain.MealKey("toast"), selection.Meal.Key)
}

func TestSelectCandidateRotationIgnoresEventsOutsideWindow(t *testing.T) {
	now := dinnerTime(t)
	meals, rows := selectorCatalog()
	history := []domain.DecisionEvent{
		cookEvent("evt-1", "toast", now.AddDate(0, 0, -8)),
	}

	selection := SelectCandidate(meals, rows, nil, history, now, 7)

	require.NotNil(t, selection.Meal)
	assert.Equal(t, domain.MealKey("toast"), selection.Meal.Key)
}

func TestSelectCandidateRotationWindowIsConfigurable(t *testing.T) {
	now := dinnerTime(t)
	meals, rows := selectorCatalog()
	history := []domain.DecisionEvent{
		cookEvent("evt-1", "toast", now.AddDate(0, 0, -8)),
	}

	selection := SelectCandidate(meals, rows, nil, history, now, 14)

	require.NotNil(t, selection.Meal)
	assert.Equal(t, domain.MealKey("omelette"), selection.Meal.Key)
}

func TestSelectCandidateTieBreaksByCatalogOrder(t *testing.T) {
	now := dinnerTime(t)
	meals := []domain.MealDefinition{
		{Key: "second-defined", Title: "Second", Active: true},
		{Key: "first-defined", Title: "First", Active: true},
	}
	rows := []domain.IngredientRow{
		{MealKey: "second-defined", Name: "bread", PantryStaple: true},
		{MealKey: "first-defined", Name: "rice", PantryStaple: true},
	}

	selection := SelectCandidate(meals, rows, nil, nil, now, 7)

	require.NotNil(t, selection.Meal)
	assert.Equal(t, domain.MealKey("second-defined"), selection.Meal.Key)
}

func TestSelectCandidateEmptyCatalogMeansZeroCook(t *testing.T) {
	now := dinnerTime(t)

	selection := SelectCandidate(nil, nil, nil, nil, now, 7)
	assert.Nil(t, selection.Meal)

	onlyInactive := []domain.MealDefinition{{Key: "retired", Title: "Retired", Active: false}}
	selection = SelectCandidate(onlyInactive, nil, nil, nil, now, 7)
	assert.Nil(t, selection.Meal)
}

func TestSelectCandidateUnknownInventoryNamesDoNotPanic(t *testing.T) {
	now := dinnerTime(t)
	meals, rows := selectorCatalog()
	inventory := []domain.InventoryItem{
		{Name: "jar of something unlabeled", Confidence: 0.5, LastSeenAt: now},
	}

	assert.NotPanics(t, func() {
		selection := SelectCandidate(meals, rows, inventory, nil, now, 7)
		require.NotNil(t, selection.Meal)
	})
}
