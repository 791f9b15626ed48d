package application

import (
	"time"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

// DecideRequest is one decision call for one household at one moment. At is
// optional; the arbiter clock supplies the time when it is zero.
type DecideRequest struct {
	Household        domain.HouseholdKey
	Energy           domain.EnergyLevel
	CalendarConflict bool
	At               time.Time
}

// DecideInputs carries the collaborator-owned rows one decision reads. The
// arbiter never fetches these itself when they are supplied directly.
type DecideInputs struct {
	ActiveMeals     []domain.MealDefinition
	Ingredients     []domain.IngredientRow
	Inventory       []domain.InventoryItem
	RecentDecisions []domain.DecisionEvent
}

// FeedbackCommand records the household's verdict on a past decision.
type FeedbackCommand struct {
	EventID domain.EventID
	Action  domain.UserAction
}
