package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

func newTestStore(t *testing.T) *EventStore {
	t.Helper()

	store, err := NewEventStore(filepath.Join(t.TempDir(), "events.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func cookEvent(id string, decidedAt time.Time) domain.DecisionEvent {
	key := domain.MealKey("omelette")
	return domain.DecisionEvent{
		ID:           domain.EventID(id),
		Household:    "hh-1",
		DecidedAt:    decidedAt,
		DecisionType: domain.DecisionCook,
		MealKey:      &key,
		ContextHash:  "hash-" + id,
		Payload: domain.CookPayload{
			DecisionType:     domain.DecisionCook,
			EventID:          domain.EventID(id),
			MealKey:          key,
			Title:            "Omelette",
			Steps:            "Whisk, pour, fold.",
			EstimatedMinutes: 15,
			ContextHash:      "hash-" + id,
		},
		UserAction: domain.UserActionPending,
	}
}

func TestEventStoreInsertAndListSince(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	older := cookEvent("evt-1", now.AddDate(0, 0, -3))
	newer := cookEvent("evt-2", now.AddDate(0, 0, -1))
	ancient := cookEvent("evt-0", now.AddDate(0, 0, -30))

	for _, event := range []domain.DecisionEvent{older, newer, ancient} {
		require.NoError(t, store.Insert(context.Background(), event))
	}

	events, err := store.ListSince(context.Background(), "hh-1", now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Most recent first.
	assert.Equal(t, domain.EventID("evt-2"), events[0].ID)
	assert.Equal(t, domain.EventID("evt-1"), events[1].ID)
	assert.Equal(t, newer.Payload, events[0].Payload)
	assert.Equal(t, domain.UserActionPending, events[0].UserAction)
}

func TestEventStoreScopedToHousehold(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	mine := cookEvent("evt-1", now)
	other := cookEvent("evt-2", now)
	other.Household = "hh-2"

	require.NoError(t, store.Insert(context.Background(), mine))
	require.NoError(t, store.Insert(context.Background(), other))

	events, err := store.ListSince(context.Background(), "hh-1", now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventID("evt-1"), events[0].ID)
}

func TestEventStoreZeroCookRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	event := domain.DecisionEvent{
		ID:           "evt-zc",
		Household:    "hh-1",
		DecidedAt:    now,
		DecisionType: domain.DecisionZeroCook,
		ContextHash:  "hash-zc",
		Payload:      domain.NewZeroCookPayload("evt-zc", "hash-zc"),
		UserAction:   domain.UserActionPending,
	}

	require.NoError(t, store.Insert(context.Background(), event))

	events, err := store.ListSince(context.Background(), "hh-1", now.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].MealKey)
	assert.Equal(t, event.Payload, events[0].Payload)
}

func TestEventStoreSetUserAction(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(context.Background(), cookEvent("evt-1", now)))
	require.NoError(t, store.SetUserAction(context.Background(), "evt-1", domain.UserActionRejected))

	events, err := store.ListSince(context.Background(), "hh-1", now.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.UserActionRejected, events[0].UserAction)
}

func TestEventStoreSetUserActionUnknownEvent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	err := store.SetUserAction(context.Background(), "missing", domain.UserActionAccepted)
	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventStoreRejectsDuplicateEventID(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(context.Background(), cookEvent("evt-1", now)))
	require.Error(t, store.Insert(context.Background(), cookEvent("evt-1", now)))
}

func TestEventStoreRejectsInvalidEvent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	err := store.Insert(context.Background(), domain.DecisionEvent{ID: "evt-1"})
	require.Error(t, err)
}
