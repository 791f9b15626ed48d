package toml

import (
	"fmt"
	"time"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

const currentSchemaVersion = 1

type catalogSchema struct {
	Version int          `toml:"version"`
	Meals   []mealSchema `toml:"meals"`
}

func (s *catalogSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s catalogSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type mealSchema struct {
	Key              string             `toml:"key"`
	Title            string             `toml:"title"`
	Active           bool               `toml:"active"`
	Steps            string             `toml:"steps"`
	EstimatedMinutes int                `toml:"estimated_minutes"`
	Ingredients      []ingredientSchema `toml:"ingredients"`
}

type ingredientSchema struct {
	Name         string `toml:"name"`
	PantryStaple bool   `toml:"pantry_staple"`
}

type inventorySchema struct {
	Version int          `toml:"version"`
	Items   []itemSchema `toml:"items"`
}

func (s *inventorySchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s inventorySchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported inventory schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type itemSchema struct {
	Name            string   `toml:"name"`
	Qty             *float64 `toml:"qty,omitempty"`
	QtyUsed         *float64 `toml:"qty_used,omitempty"`
	Unit            string   `toml:"unit,omitempty"`
	Confidence      float64  `toml:"confidence"`
	LastSeenAt      string   `toml:"last_seen_at"`
	LastUsedAt      string   `toml:"last_used_at,omitempty"`
	DecayRatePerDay *float64 `toml:"decay_rate_per_day,omitempty"`
}

func toMealSchema(meal domain.MealDefinition, ingredients []domain.IngredientRow) mealSchema {
	rows := domain.IngredientsFor(meal.Key, ingredients)
	encoded := make([]ingredientSchema, 0, len(rows))
	for _, row := range rows {
		encoded = append(encoded, ingredientSchema{Name: row.Name, PantryStaple: row.PantryStaple})
	}

	return mealSchema{
		Key:              string(meal.Key),
		Title:            meal.Title,
		Active:           meal.Active,
		Steps:            meal.Steps,
		EstimatedMinutes: meal.EstimatedMinutes,
		Ingredients:      encoded,
	}
}

func fromMealSchema(meal mealSchema) (domain.MealDefinition, []domain.IngredientRow) {
	def := domain.MealDefinition{
		Key:              domain.MealKey(meal.Key),
		Title:            meal.Title,
		Active:           meal.Active,
		Steps:            meal.Steps,
		EstimatedMinutes: meal.EstimatedMinutes,
	}

	rows := make([]domain.IngredientRow, 0, len(meal.Ingredients))
	for _, ingredient := range meal.Ingredients {
		rows = append(rows, domain.IngredientRow{
			MealKey:      def.Key,
			Name:         ingredient.Name,
			PantryStaple: ingredient.PantryStaple,
		})
	}

	return def, rows
}

func toItemSchema(item domain.InventoryItem) itemSchema {
	encoded := itemSchema{
		Name:            item.Name,
		Qty:             item.QtyEstimated,
		QtyUsed:         item.QtyUsedEstimated,
		Unit:            item.Unit,
		Confidence:      item.Confidence,
		LastSeenAt:      formatTime(item.LastSeenAt),
		DecayRatePerDay: item.DecayRatePerDay,
	}
	if item.LastUsedAt != nil {
		encoded.LastUsedAt = formatTime(*item.LastUsedAt)
	}

	return encoded
}

func fromItemSchema(item itemSchema) domain.InventoryItem {
	decoded := domain.InventoryItem{
		Name:             item.Name,
		QtyEstimated:     item.Qty,
		QtyUsedEstimated: item.QtyUsed,
		Unit:             item.Unit,
		Confidence:       item.Confidence,
		LastSeenAt:       parseTime(item.LastSeenAt),
		DecayRatePerDay:  item.DecayRatePerDay,
	}
	if item.LastUsedAt != "" {
		lastUsed := parseTime(item.LastUsedAt)
		decoded.LastUsedAt = &lastUsed
	}

	return decoded
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
