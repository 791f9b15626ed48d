package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

func dinnerTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 8, 30, 18, 5, 0, 0, time.UTC)
}

func rejectedEvent(id string, decidedAt time.Time) domain.DecisionEvent {
	key := domain.MealKey("omelette")
	return domain.DecisionEvent{
		ID:           domain.EventID(id),
		Household:    "hh-1",
		DecidedAt:    decidedAt,
		DecisionType: domain.DecisionCook,
		MealKey:      &key,
		ContextHash:  "hash",
		UserAction:   domain.UserActionRejected,
	}
}

func TestEvaluateDRMTriggerPrecedence(t *testing.T) {
	now := dinnerTime(t)
	rejections := []domain.DecisionEvent{
		rejectedEvent("evt-1", now.Add(-48*time.Hour)),
		rejectedEvent("evt-2", now.Add(-24*time.Hour)),
	}

	tests := []struct {
		name       string
		signal     domain.SignalContext
		history    []domain.DecisionEvent
		wantReason domain.DRMReason
	}{
		{
			name:       "low energy wins over everything",
			signal:     domain.NewSignalContext(now.Add(3*time.Hour), domain.EnergyLow, true),
			history:    rejections,
			wantReason: domain.ReasonLowEnergy,
		},
		{
			name:       "calendar conflict before lateness",
			signal:     domain.NewSignalContext(now.Add(3*time.Hour), domain.EnergyOK, true),
			history:    rejections,
			wantReason: domain.ReasonCalendarConflict,
		},
		{
			name:       "late hour before rejection history",
			signal:     domain.NewSignalContext(now.Add(3*time.Hour), domain.EnergyOK, false),
			history:    rejections,
			wantReason: domain.ReasonLateNoAction,
		},
		{
			name:       "two most recent rejections",
			signal:     domain.NewSignalContext(now, domain.EnergyOK, false),
			history:    rejections,
			wantReason: domain.ReasonTwoRejections,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, triggered := EvaluateDRMTrigger(tt.signal, tt.history)
			assert.True(t, triggered)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestEvaluateDRMTriggerNoTrigger(t *testing.T) {
	now := dinnerTime(t)
	signal := domain.NewSignalContext(now, domain.EnergyOK, false)

	_, triggered := EvaluateDRMTrigger(signal, nil)
	assert.False(t, triggered)
}

func TestEvaluateDRMTriggerLateBoundary(t *testing.T) {
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	at1959 := domain.NewSignalContext(day.Add(19*time.Hour+59*time.Minute), domain.EnergyOK, false)
	_, triggered := EvaluateDRMTrigger(at1959, nil)
	assert.False(t, triggered)

	at2000 := domain.NewSignalContext(day.Add(20*time.Hour), domain.EnergyOK, false)
	reason, triggered := EvaluateDRMTrigger(at2000, nil)
	assert.True(t, triggered)
	assert.Equal(t, domain.ReasonLateNoAction, reason)
}

func TestEvaluateDRMTriggerMostRecentAcceptanceBreaksStreak(t *testing.T) {
	now := dinnerTime(t)

	accepted := rejectedEvent("evt-3", now.Add(-12*time.Hour))
	accepted.UserAction = domain.UserActionAccepted

	history := []domain.DecisionEvent{
		rejectedEvent("evt-1", now.Add(-48*time.Hour)),
		rejectedEvent("evt-2", now.Add(-24*time.Hour)),
		accepted,
	}

	signal := domain.NewSignalContext(now, domain.EnergyOK, false)
	_, triggered := EvaluateDRMTrigger(signal, history)
	assert.False(t, triggered)
}

func TestEvaluateDRMTriggerIgnoresRejectionsOutsideWindow(t *testing.T) {
	now := dinnerTime(t)
	history := []domain.DecisionEvent{
		rejectedEvent("evt-1", now.AddDate(0, 0, -9)),
		rejectedEvent("evt-2", now.AddDate(0, 0, -8)),
	}

	signal := domain.NewSignalContext(now, domain.EnergyOK, false)
	_, triggered := EvaluateDRMTrigger(signal, history)
	assert.False(t, triggered)
}

func TestEvaluateDRMTriggerUnsortedHistoryStillFindsMostRecent(t *testing.T) {
	now := dinnerTime(t)

	oldAccepted := rejectedEvent("evt-0", now.AddDate(0, 0, -6))
	oldAccepted.UserAction = domain.UserActionAccepted

	history := []domain.DecisionEvent{
		rejectedEvent("evt-2", now.Add(-24*time.Hour)),
		oldAccepted,
		rejectedEvent("evt-1", now.Add(-48*time.Hour)),
	}

	signal := domain.NewSignalContext(now, domain.EnergyOK, false)
	reason, triggered := EvaluateDRMTrigger(signal, history)
	assert.True(t, triggered)
	assert.Equal(t, domain.ReasonTwoRejections, reason)
}

func TestEvaluateDRMTriggerSingleRejectionNotEnough(t *testing.T) {
	now := dinnerTime(t)
	history := []domain.DecisionEvent{rejectedEvent("evt-1", now.Add(-24*time.Hour))}

	signal := domain.NewSignalContext(now, domain.EnergyOK, false)
	_, triggered := EvaluateDRMTrigger(signal, history)
	assert.False(t, triggered)
}
