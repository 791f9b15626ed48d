package decision

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

func renderOpts() RenderOptions {
	return RenderOptions{Now: time.Date(2026, 8, 30, 18, 5, 0, 0, time.UTC)}
}

func TestRenderCookDecision(t *testing.T) {
	response := domain.NewDecisionResponse(domain.CookPayload{
		DecisionType:     domain.DecisionCook,
		EventID:          "evt-1",
		MealKey:          "omelette",
		Title:            "Omelette",
		Steps:            "Whisk, pour, fold.",
		EstimatedMinutes: 15,
		ContextHash:      "deadbeefdeadbeefdeadbeef",
	})

	out, err := Render(response, renderOpts())
	require.NoError(t, err)

	assert.Contains(t, out, "Omelette")
	assert.Contains(t, out, "about 15 minutes")
	assert.Contains(t, out, "evt-1")
	assert.Contains(t, out, "deadbeefdead")
	assert.NotContains(t, out, "deadbeefdeadbeefdeadbeef")
}

func TestRenderZeroCookDecision(t *testing.T) {
	response := domain.NewDecisionResponse(domain.NewZeroCookPayload("evt-2", "cafe"))

	out, err := Render(response, renderOpts())
	require.NoError(t, err)

	assert.Contains(t, out, "Zero-cook plate")
	assert.Contains(t, out, "evt-2")
}

func TestRenderRescueRouting(t *testing.T) {
	tests := []struct {
		reason domain.DRMReason
		want   string
	}{
		{reason: domain.ReasonLowEnergy, want: "Energy is low"},
		{reason: domain.ReasonCalendarConflict, want: "calendar"},
		{reason: domain.ReasonLateNoAction, want: "late"},
		{reason: domain.ReasonTwoRejections, want: "didn't land"},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			out, err := Render(domain.NewRescueResponse(tt.reason), renderOpts())
			require.NoError(t, err)
			assert.Contains(t, out, "No dinner suggestion tonight")
			assert.Contains(t, out, tt.want)
		})
	}
}
