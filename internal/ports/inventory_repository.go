package ports

import (
	"context"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

type InventoryRepository interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Upsert(ctx context.Context, item domain.InventoryItem) error
	Remove(ctx context.Context, name string) error
}
