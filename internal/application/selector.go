package application

import (
	"time"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

// DefaultRotationWindowDays is the fallback rotation-avoidance window when
// configuration does not set one.
const DefaultRotationWindowDays = 7

// Selection is the outcome of candidate selection. A nil Meal means the
// catalog had nothing active and the caller should fall back to zero-cook.
type Selection struct {
	Meal          *domain.MealDefinition
	Score         float64
	RotationReset bool
}

// SelectCandidate picks one meal from the active catalog. Meals decided in
// the trailing rotation window are avoided, but rotation is best-effort: if
// exclusion would exhaust the catalog the history is ignored for this call
// rather than ever returning "no meal available". Ties on score resolve to
// catalog order, so selection is deterministic.
func SelectCandidate(
	activeMeals []domain.MealDefinition,
	ingredients []domain.IngredientRow,
	inventory []domain.InventoryItem,
	recentDecisions []domain.DecisionEvent,
	now time.Time,
	rotationWindowDays int,
) Selection {
	if rotationWindowDays <= 0 {
		rotationWindowDays = DefaultRotationWindowDays
	}

	candidates := make([]domain.MealDefinition, 0, len(activeMeals))
	for _, meal := range activeMeals {
		if meal.Active {
			candidates = append(candidates, meal)
		}
	}

	if len(candidates) == 0 {
		return Selection{}
	}

	recentKeys := recentlyDecidedKeys(recentDecisions, now, rotationWindowDays)

	rotated := make([]domain.MealDefinition, 0, len(candidates))
	for _, meal := range candidates {
		if _, used := recentKeys[meal.Key]; !used {
			rotated = append(rotated, meal)
		}
	}

	reset := false
	if len(rotated) == 0 {
		rotated = candidates
		reset = true
	}

	best := rotated[0]
	bestScore := domain.ScoreMealByInventory(best, ingredients, inventory, now)
	for _, meal := range rotated[1:] {
		score := domain.ScoreMealByInventory(meal, ingredients, inventory, now)
		if score > bestScore {
			best = meal
			bestScore = score
		}
	}

	return Selection{Meal: &best, Score: bestScore, RotationReset: reset}
}

func recentlyDecidedKeys(recentDecisions []domain.DecisionEvent, now time.Time, rotationWindowDays int) map[domain.MealKey]struct{} {
	cutoff := now.AddDate(0, 0, -rotationWindowDays)

	keys := make(map[domain.MealKey]struct{}, len(recentDecisions))
	for _, event := range recentDecisions {
		if event.MealKey == nil || event.DecidedAt.Before(cutoff) {
			continue
		}
		keys[*event.MealKey] = struct{}{}
	}

	return keys
}
