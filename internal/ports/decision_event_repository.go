package ports

import (
	"context"
	"time"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

type DecisionEventRepository interface {
	Insert(ctx context.Context, event domain.DecisionEvent) error
	// ListSince returns the household's events with decided_at >= since,
	// most recent first.
	ListSince(ctx context.Context, household domain.HouseholdKey, since time.Time) ([]domain.DecisionEvent, error)
	SetUserAction(ctx context.Context, id domain.EventID, action domain.UserAction) error
}
