package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/RogueScr1be/fast-food-sub004/internal/ports"
)

// ArbiterConfig tunes the decision rules that are policy rather than
// invariant. The rotation window is explicit configuration, not a constant.
type ArbiterConfig struct {
	RotationWindowDays int
}

func (c ArbiterConfig) withDefaults() ArbiterConfig {
	if c.RotationWindowDays <= 0 {
		c.RotationWindowDays = DefaultRotationWindowDays
	}

	return c
}

// Arbiter decides one concrete meal action, or routes the household to the
// rescue flow. It is stateless per call and never performs I/O outside its
// injected ports.
type Arbiter struct {
	catalog   ports.CatalogRepository
	inventory ports.InventoryRepository
	events    ports.DecisionEventRepository
	ids       ports.IDGenerator
	clock     ports.Clock
	cfg       ArbiterConfig
	logger    *zap.Logger
}

func NewArbiter(
	catalog ports.CatalogRepository,
	inventory ports.InventoryRepository,
	events ports.DecisionEventRepository,
	ids ports.IDGenerator,
	clock ports.Clock,
	cfg ArbiterConfig,
	logger *zap.Logger,
) *Arbiter {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Arbiter{
		catalog:   catalog,
		inventory: inventory,
		events:    events,
		ids:       ids,
		clock:     clock,
		cfg:       cfg.withDefaults(),
		logger:    logger,
	}
}

// Decide loads the catalog, inventory, and recent history through the ports
// and runs one decision.
func (a *Arbiter) Decide(ctx context.Context, req DecideRequest) (domain.DecisionResponse, error) {
	now := req.At
	if now.IsZero() {
		now = a.clock.Now()
	}
	req.At = now

	activeMeals, err := a.catalog.ListActiveMeals(ctx)
	if err != nil {
		return domain.DecisionResponse{}, fmt.Errorf("list active meals: %w", err)
	}

	ingredients, err := a.catalog.ListIngredients(ctx)
	if err != nil {
		return domain.DecisionResponse{}, fmt.Errorf("list ingredients: %w", err)
	}

	inventory, err := a.inventory.List(ctx)
	if err != nil {
		return domain.DecisionResponse{}, fmt.Errorf("list inventory: %w", err)
	}

	historyDays := a.cfg.RotationWindowDays
	if DRMWindowDays > historyDays {
		historyDays = DRMWindowDays
	}
	recent, err := a.events.ListSince(ctx, req.Household, now.AddDate(0, 0, -historyDays))
	if err != nil {
		return domain.DecisionResponse{}, fmt.Errorf("list recent decisions: %w", err)
	}

	return a.MakeDecision(ctx, req, DecideInputs{
		ActiveMeals:     activeMeals,
		Ingredients:     ingredients,
		Inventory:       inventory,
		RecentDecisions: recent,
	})
}

// MakeDecision runs the three stages of one decision over pre-loaded inputs:
// trigger evaluation, candidate selection, then event persistence. Every
// return path passes the response invariant guard.
func (a *Arbiter) MakeDecision(ctx context.Context, req DecideRequest, inputs DecideInputs) (domain.DecisionResponse, error) {
	if !req.Energy.Valid() {
		return domain.DecisionResponse{}, fmt.Errorf("unsupported energy level %q", req.Energy)
	}

	now := req.At
	if now.IsZero() {
		now = a.clock.Now()
	}
	signal := domain.NewSignalContext(now, req.Energy, req.CalendarConflict)

	if reason, triggered := EvaluateDRMTrigger(signal, inputs.RecentDecisions); triggered {
		a.logger.Info("routing to rescue flow",
			zap.String("household", string(req.Household)),
			zap.String("reason", string(reason)),
		)
		return finalize(domain.NewRescueResponse(reason))
	}

	selection := SelectCandidate(
		inputs.ActiveMeals,
		inputs.Ingredients,
		inputs.Inventory,
		inputs.RecentDecisions,
		now,
		a.cfg.RotationWindowDays,
	)

	names := make([]string, 0, len(inputs.Inventory))
	for _, item := range inputs.Inventory {
		names = append(names, item.Name)
	}

	nowISO := now.Format(time.RFC3339)
	eventID := domain.EventID(a.ids.NewID())

	var payload domain.DecisionPayload
	var mealKey *domain.MealKey
	decisionType := domain.DecisionZeroCook

	if selection.Meal != nil {
		meal := *selection.Meal
		hash := domain.ComputeContextHash(nowISO, signal, names, meal.Key)
		payload = domain.CookPayload{
			DecisionType:     domain.DecisionCook,
			EventID:          eventID,
			MealKey:          meal.Key,
			Title:            meal.Title,
			Steps:            meal.Steps,
			EstimatedMinutes: meal.EstimatedMinutes,
			ContextHash:      hash,
		}
		mealKey = &meal.Key
		decisionType = domain.DecisionCook
	} else {
		hash := domain.ComputeContextHash(nowISO, signal, names, domain.MealKey(domain.DecisionZeroCook))
		payload = domain.NewZeroCookPayload(eventID, hash)
	}

	event := domain.DecisionEvent{
		ID:           eventID,
		Household:    req.Household,
		DecidedAt:    now,
		DecisionType: decisionType,
		MealKey:      mealKey,
		ContextHash:  contextHashOf(payload),
		Payload:      payload,
		UserAction:   domain.UserActionPending,
	}
	if err := event.Validate(); err != nil {
		return domain.DecisionResponse{}, fmt.Errorf("build decision event: %w", err)
	}

	// A decision that was never durably recorded is not a decision:
	// feedback attribution depends on the event row existing.
	if err := a.events.Insert(ctx, event); err != nil {
		return domain.DecisionResponse{}, fmt.Errorf("persist decision event: %w", err)
	}

	a.logger.Info("decision made",
		zap.String("household", string(req.Household)),
		zap.String("event_id", string(eventID)),
		zap.String("decision_type", string(decisionType)),
		zap.Float64("score", selection.Score),
		zap.Bool("rotation_reset", selection.RotationReset),
	)

	return finalize(domain.NewDecisionResponse(payload))
}

// RecordFeedback sets a pending event's user action to accepted or rejected.
func (a *Arbiter) RecordFeedback(ctx context.Context, cmd FeedbackCommand) error {
	if cmd.Action != domain.UserActionAccepted && cmd.Action != domain.UserActionRejected {
		return fmt.Errorf("unsupported feedback action %q", cmd.Action)
	}

	if err := a.events.SetUserAction(ctx, cmd.EventID, cmd.Action); err != nil {
		return fmt.Errorf("record feedback: %w", err)
	}

	return nil
}

// History returns the household's decision events over the trailing window,
// most recent first.
func (a *Arbiter) History(ctx context.Context, household domain.HouseholdKey, days int) ([]domain.DecisionEvent, error) {
	if days <= 0 {
		days = DRMWindowDays
	}

	events, err := a.events.ListSince(ctx, household, a.clock.Now().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("list decision history: %w", err)
	}

	return events, nil
}

func finalize(response domain.DecisionResponse) (domain.DecisionResponse, error) {
	if err := domain.AssertNoArrays(response); err != nil {
		return domain.DecisionResponse{}, err
	}

	return response, nil
}

func contextHashOf(payload domain.DecisionPayload) string {
	switch p := payload.(type) {
	case domain.CookPayload:
		return p.ContextHash
	case domain.ZeroCookPayload:
		return p.ContextHash
	default:
		return ""
	}
}
