package application

import (
	"sort"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

const (
	// DRMRejectionThreshold is how many consecutive most-recent rejections
	// route the household to rescue instead of another suggestion.
	DRMRejectionThreshold = 2

	// DRMWindowDays bounds how far back rejection history is considered.
	DRMWindowDays = 7
)

// EvaluateDRMTrigger decides whether a concrete decision should be suppressed
// in favor of the rescue route. Checks run in fixed precedence; the first
// match wins. Runs before any meal selection.
func EvaluateDRMTrigger(signal domain.SignalContext, recentDecisions []domain.DecisionEvent) (domain.DRMReason, bool) {
	if signal.Energy == domain.EnergyLow {
		return domain.ReasonLowEnergy, true
	}

	if signal.CalendarConflict {
		return domain.ReasonCalendarConflict, true
	}

	if signal.Now.Hour() >= domain.LateThresholdHour {
		return domain.ReasonLateNoAction, true
	}

	if lastTwoRejected(signal, recentDecisions) {
		return domain.ReasonTwoRejections, true
	}

	return "", false
}

func lastTwoRejected(signal domain.SignalContext, recentDecisions []domain.DecisionEvent) bool {
	cutoff := signal.Now.AddDate(0, 0, -DRMWindowDays)

	window := make([]domain.DecisionEvent, 0, len(recentDecisions))
	for _, event := range recentDecisions {
		if event.DecidedAt.Before(cutoff) {
			continue
		}
		window = append(window, event)
	}

	if len(window) < DRMRejectionThreshold {
		return false
	}

	sort.SliceStable(window, func(i, j int) bool {
		return window[i].DecidedAt.After(window[j].DecidedAt)
	})

	for _, event := range window[:DRMRejectionThreshold] {
		if event.UserAction != domain.UserActionRejected {
			return false
		}
	}

	return true
}
