package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
	"github.com/RogueScr1be/fast-food-sub004/internal/ports"
)

// EventStore persists decision events in a local sqlite database. One row
// per concrete decision; DRM routings never reach this store.
type EventStore struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ ports.DecisionEventRepository = (*EventStore)(nil)

func NewEventStore(dbPath string, logger *zap.Logger) (*EventStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open decision event database: %w", err)
	}

	store := &EventStore{db: db, logger: logger}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize decision event schema: %w", err)
	}

	return store, nil
}

func (s *EventStore) Close() error {
	return s.db.Close()
}

func (s *EventStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS decision_events (
        id TEXT PRIMARY KEY,
        household_key TEXT NOT NULL,
        decided_at DATETIME NOT NULL,
        decision_type TEXT NOT NULL,
        meal_key TEXT,
        context_hash TEXT NOT NULL,
        payload TEXT NOT NULL,
        user_action TEXT NOT NULL DEFAULT 'pending'
    );

    CREATE INDEX IF NOT EXISTS idx_decision_events_household_decided
        ON decision_events(household_key, decided_at);
    `

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

func (s *EventStore) Insert(ctx context.Context, event domain.DecisionEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid decision event: %w", err)
	}

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("encode decision payload: %w", err)
	}

	var mealKey sql.NullString
	if event.MealKey != nil {
		mealKey = sql.NullString{String: string(*event.MealKey), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO decision_events (id, household_key, decided_at, decision_type, meal_key, context_hash, payload, user_action)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(event.ID),
		string(event.Household),
		event.DecidedAt.UTC().Format(time.RFC3339),
		string(event.DecisionType),
		mealKey,
		event.ContextHash,
		string(payload),
		string(event.UserAction),
	)
	if err != nil {
		return fmt.Errorf("insert decision event: %w", err)
	}

	s.logger.Debug("decision event inserted",
		zap.String("event_id", string(event.ID)),
		zap.String("household", string(event.Household)),
		zap.String("decision_type", string(event.DecisionType)),
	)

	return nil
}

func (s *EventStore) ListSince(ctx context.Context, household domain.HouseholdKey, since time.Time) ([]domain.DecisionEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, household_key, decided_at, decision_type, meal_key, context_hash, payload, user_action
        FROM decision_events
        WHERE household_key = ? AND decided_at >= ?
        ORDER BY decided_at DESC`,
		string(household),
		since.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("query decision events: %w", err)
	}
	defer rows.Close()

	var events []domain.DecisionEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decision events: %w", err)
	}

	return events, nil
}

func (s *EventStore) SetUserAction(ctx context.Context, id domain.EventID, action domain.UserAction) error {
	if !action.Valid() {
		return fmt.Errorf("unsupported user action %q", action)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE decision_events SET user_action = ? WHERE id = ?`,
		string(action), string(id),
	)
	if err != nil {
		return fmt.Errorf("update user action: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func scanEvent(rows *sql.Rows) (domain.DecisionEvent, error) {
	var (
		id           string
		household    string
		decidedAtRaw string
		decisionType string
		mealKey      sql.NullString
		contextHash  string
		payloadRaw   string
		userAction   string
	)

	if err := rows.Scan(&id, &household, &decidedAtRaw, &decisionType, &mealKey, &contextHash, &payloadRaw, &userAction); err != nil {
		return domain.DecisionEvent{}, fmt.Errorf("scan decision event: %w", err)
	}

	decidedAt, err := time.Parse(time.RFC3339, decidedAtRaw)
	if err != nil {
		return domain.DecisionEvent{}, fmt.Errorf("parse decided_at: %w", err)
	}

	event := domain.DecisionEvent{
		ID:           domain.EventID(id),
		Household:    domain.HouseholdKey(household),
		DecidedAt:    decidedAt,
		DecisionType: domain.DecisionType(decisionType),
		ContextHash:  contextHash,
		UserAction:   domain.UserAction(userAction),
	}
	if mealKey.Valid {
		key := domain.MealKey(mealKey.String)
		event.MealKey = &key
	}

	payload, err := decodePayload(event.DecisionType, []byte(payloadRaw))
	if err != nil {
		return domain.DecisionEvent{}, err
	}
	event.Payload = payload

	return event, nil
}

func decodePayload(decisionType domain.DecisionType, raw []byte) (domain.DecisionPayload, error) {
	switch decisionType {
	case domain.DecisionCook:
		var payload domain.CookPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode cook payload: %w", err)
		}
		return payload, nil
	case domain.DecisionZeroCook:
		var payload domain.ZeroCookPayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, fmt.Errorf("decode zero-cook payload: %w", err)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unknown decision type %q", decisionType)
	}
}
