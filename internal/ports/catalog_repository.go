package ports

import (
	"context"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

type CatalogRepository interface {
	ListMeals(ctx context.Context) ([]domain.MealDefinition, error)
	ListActiveMeals(ctx context.Context) ([]domain.MealDefinition, error)
	ListIngredients(ctx context.Context) ([]domain.IngredientRow, error)
	ReplaceCatalog(ctx context.Context, meals []domain.MealDefinition, ingredients []domain.IngredientRow) error
}
