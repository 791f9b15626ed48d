package domain

import "time"

type EnergyLevel string

const (
	EnergyLow  EnergyLevel = "low"
	EnergyOK   EnergyLevel = "ok"
	EnergyHigh EnergyLevel = "high"
)

func (e EnergyLevel) Valid() bool {
	switch e {
	case EnergyLow, EnergyOK, EnergyHigh:
		return true
	default:
		return false
	}
}

type TimeWindow string

const (
	WindowMorning TimeWindow = "morning"
	WindowMidday  TimeWindow = "midday"
	WindowDinner  TimeWindow = "dinner"
	WindowLate    TimeWindow = "late"
)

// Dinner-window hours, local time. DinnerStartHour < LateThresholdHour and
// LateThresholdHour <= DinnerEndHour must hold.
const (
	DinnerStartHour   = 17
	LateThresholdHour = 20
	DinnerEndHour     = 21
)

// ClassifyWindow buckets a local timestamp into a time-of-day window.
func ClassifyWindow(now time.Time) TimeWindow {
	hour := now.Hour()
	switch {
	case hour >= LateThresholdHour:
		return WindowLate
	case hour >= DinnerStartHour:
		return WindowDinner
	case hour >= 11:
		return WindowMidday
	default:
		return WindowMorning
	}
}

// SignalContext is the per-call household signal snapshot. Immutable for the
// duration of one decision.
type SignalContext struct {
	Window           TimeWindow
	Energy           EnergyLevel
	CalendarConflict bool
	Now              time.Time
}

func NewSignalContext(now time.Time, energy EnergyLevel, calendarConflict bool) SignalContext {
	return SignalContext{
		Window:           ClassifyWindow(now),
		Energy:           energy,
		CalendarConflict: calendarConflict,
		Now:              now,
	}
}
