package application

import (
	"time"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

// StarterCatalog is the built-in catalog written by seeding. It contains all
// ten safe-core meals plus a handful of inventory-dependent ones.
func StarterCatalog() ([]domain.MealDefinition, []domain.IngredientRow) {
	meals := []domain.MealDefinition{
		{Key: "buttered-noodles", Title: "Buttered Noodles", Active: true, Steps: "Boil noodles, drain, toss with butter and a pinch of salt.", EstimatedMinutes: 15},
		{Key: "rice-and-eggs", Title: "Rice and Eggs", Active: true, Steps: "Cook rice, fry two eggs, stack, season with soy sauce.", EstimatedMinutes: 20},
		{Key: "quesadilla", Title: "Cheese Quesadilla", Active: true, Steps: "Fill tortilla with cheese, toast in a dry pan until melted, flip once.", EstimatedMinutes: 10},
		{Key: "grilled-cheese", Title: "Grilled Cheese", Active: true, Steps: "Butter bread, add cheese, grill both sides on medium heat.", EstimatedMinutes: 10},
		{Key: "peanut-butter-toast", Title: "Peanut Butter Toast", Active: true, Steps: "Toast bread, spread peanut butter, add honey if wanted.", EstimatedMinutes: 5},
		{Key: "pasta-olive-oil-garlic", Title: "Pasta with Olive Oil and Garlic", Active: true, Steps: "Boil pasta, warm sliced garlic in olive oil, combine, finish with pepper.", EstimatedMinutes: 20},
		{Key: "oatmeal-bowl", Title: "Oatmeal Bowl", Active: true, Steps: "Simmer oats in water or milk, sweeten, top with whatever is around.", EstimatedMinutes: 10},
		{Key: "bean-and-rice-bowl", Title: "Bean and Rice Bowl", Active: true, Steps: "Warm canned beans with cumin, serve over rice.", EstimatedMinutes: 20},
		{Key: "fried-rice-basic", Title: "Basic Fried Rice", Active: true, Steps: "Fry cold rice with oil, soy sauce, and an egg.", EstimatedMinutes: 15},
		{Key: "tomato-soup-toast", Title: "Tomato Soup and Toast", Active: true, Steps: "Heat canned tomato soup, toast bread for dipping.", EstimatedMinutes: 10},
		{Key: "veggie-stir-fry", Title: "Veggie Stir-Fry", Active: true, Steps: "Stir-fry chopped vegetables on high heat, sauce with soy and garlic, serve over rice.", EstimatedMinutes: 25},
		{Key: "omelette", Title: "Omelette", Active: true, Steps: "Whisk eggs, pour into a buttered pan, fold over cheese and vegetables.", EstimatedMinutes: 15},
		{Key: "sheet-pan-sausage", Title: "Sheet-Pan Sausage and Veg", Active: true, Steps: "Roast sausage and chopped vegetables at 220C until browned.", EstimatedMinutes: 35},
		{Key: "tuna-melt", Title: "Tuna Melt", Active: true, Steps: "Mix tuna with mayo, pile on bread with cheese, broil until bubbling.", EstimatedMinutes: 15},
	}

	rows := []domain.IngredientRow{
		{MealKey: "buttered-noodles", Name: "noodles", PantryStaple: true},
		{MealKey: "buttered-noodles", Name: "butter", PantryStaple: true},
		{MealKey: "buttered-noodles", Name: "salt", PantryStaple: true},

		{MealKey: "rice-and-eggs", Name: "rice", PantryStaple: true},
		{MealKey: "rice-and-eggs", Name: "eggs", PantryStaple: false},
		{MealKey: "rice-and-eggs", Name: "soy sauce", PantryStaple: true},

		{MealKey: "quesadilla", Name: "tortilla", PantryStaple: true},
		{MealKey: "quesadilla", Name: "cheese", PantryStaple: false},

		{MealKey: "grilled-cheese", Name: "bread", PantryStaple: true},
		{MealKey: "grilled-cheese", Name: "butter", PantryStaple: true},
		{MealKey: "grilled-cheese", Name: "cheese", PantryStaple: false},

		{MealKey: "peanut-butter-toast", Name: "bread", PantryStaple: true},
		{MealKey: "peanut-butter-toast", Name: "peanut butter", PantryStaple: true},

		{MealKey: "pasta-olive-oil-garlic", Name: "pasta", PantryStaple: true},
		{MealKey: "pasta-olive-oil-garlic", Name: "olive oil", PantryStaple: true},
		{MealKey: "pasta-olive-oil-garlic", Name: "garlic", PantryStaple: true},

		{MealKey: "oatmeal-bowl", Name: "oats", PantryStaple: true},
		{MealKey: "oatmeal-bowl", Name: "milk", PantryStaple: false},

		{MealKey: "bean-and-rice-bowl", Name: "canned beans", PantryStaple: true},
		{MealKey: "bean-and-rice-bowl", Name: "rice", PantryStaple: true},
		{MealKey: "bean-and-rice-bowl", Name: "cumin", PantryStaple: true},

		{MealKey: "fried-rice-basic", Name: "rice", PantryStaple: true},
		{MealKey: "fried-rice-basic", Name: "soy sauce", PantryStaple: true},
		{MealKey: "fried-rice-basic", Name: "eggs", PantryStaple: false},

		{MealKey: "tomato-soup-toast", Name: "canned tomato soup", PantryStaple: true},
		{MealKey: "tomato-soup-toast", Name: "bread", PantryStaple: true},

		{MealKey: "veggie-stir-fry", Name: "rice", PantryStaple: true},
		{MealKey: "veggie-stir-fry", Name: "soy sauce", PantryStaple: true},
		{MealKey: "veggie-stir-fry", Name: "broccoli", PantryStaple: false},
		{MealKey: "veggie-stir-fry", Name: "bell pepper", PantryStaple: false},
		{MealKey: "veggie-stir-fry", Name: "carrots", PantryStaple: false},

		{MealKey: "omelette", Name: "eggs", PantryStaple: false},
		{MealKey: "omelette", Name: "cheese", PantryStaple: false},
		{MealKey: "omelette", Name: "butter", PantryStaple: true},

		{MealKey: "sheet-pan-sausage", Name: "sausage", PantryStaple: false},
		{MealKey: "sheet-pan-sausage", Name: "potatoes", PantryStaple: false},
		{MealKey: "sheet-pan-sausage", Name: "onion", PantryStaple: false},
		{MealKey: "sheet-pan-sausage", Name: "olive oil", PantryStaple: true},

		{MealKey: "tuna-melt", Name: "canned tuna", PantryStaple: true},
		{MealKey: "tuna-melt", Name: "mayo", PantryStaple: true},
		{MealKey: "tuna-melt", Name: "bread", PantryStaple: true},
		{MealKey: "tuna-melt", Name: "cheese", PantryStaple: false},
	}

	return meals, rows
}

// StarterInventory is a small plausible fridge snapshot for first runs.
func StarterInventory(now time.Time) []domain.InventoryItem {
	qty := func(v float64) *float64 { return &v }

	return []domain.InventoryItem{
		{Name: "eggs", QtyEstimated: qty(12), Unit: "count", Confidence: 0.95, LastSeenAt: now},
		{Name: "cheese", QtyEstimated: qty(250), Unit: "g", Confidence: 0.9, LastSeenAt: now},
		{Name: "milk", QtyEstimated: qty(1), Unit: "l", Confidence: 0.9, LastSeenAt: now},
		{Name: "broccoli", QtyEstimated: qty(1), Unit: "head", Confidence: 0.8, LastSeenAt: now},
		{Name: "carrots", QtyEstimated: qty(6), Unit: "count", Confidence: 0.85, LastSeenAt: now},
	}
}
