package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDecayRatePerDay is applied when an item carries no explicit rate.
	DefaultDecayRatePerDay = 0.05

	// ConfidenceFloor keeps decayed confidence at no less than 20% of the
	// last-observed value: an old observation is "probably still roughly
	// true", never hard-expired.
	ConfidenceFloor = 0.2

	confidenceDecayPerDay = 0.03

	// DefaultAvailabilityThreshold is the decayed-confidence cutoff below
	// which an item is no longer assumed present.
	DefaultAvailabilityThreshold = 0.60
)

// InventoryItem is one observed household ingredient. Quantity fields are
// estimates; a nil QtyEstimated means the remaining quantity is unknown,
// which is not the same as zero.
type InventoryItem struct {
	Name             string
	QtyEstimated     *float64
	QtyUsedEstimated *float64
	Unit             string
	Confidence       float64
	LastSeenAt       time.Time
	LastUsedAt       *time.Time
	DecayRatePerDay  *float64
}

func (i InventoryItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if i.Confidence < 0 || i.Confidence > 1 {
		return fmt.Errorf("confidence must be within [0, 1]")
	}
	if i.LastSeenAt.IsZero() {
		return fmt.Errorf("last seen time is required")
	}

	return nil
}

func (i InventoryItem) elapsedDays(now time.Time) float64 {
	days := now.Sub(i.LastSeenAt).Hours() / 24
	if days < 0 {
		return 0
	}

	return days
}

// RemainingQty estimates how much of the item is left after time-based decay.
// The second return value reports whether the estimate is known at all;
// callers must not treat unknown as zero.
func (i InventoryItem) RemainingQty(now time.Time) (float64, bool) {
	if i.QtyEstimated == nil {
		return 0, false
	}

	used := 0.0
	if i.QtyUsedEstimated != nil {
		used = *i.QtyUsedEstimated
	}

	rate := DefaultDecayRatePerDay
	if i.DecayRatePerDay != nil {
		rate = *i.DecayRatePerDay
	}

	retained := 1 - i.elapsedDays(now)*rate
	if retained < 0 {
		retained = 0
	}

	remaining := (*i.QtyEstimated - used) * retained
	if remaining < 0 {
		remaining = 0
	}

	return remaining, true
}

// DecayedConfidence reduces observation confidence by elapsed time, never
// below ConfidenceFloor times the observed value, clamped to [0, 1].
func (i InventoryItem) DecayedConfidence(now time.Time) float64 {
	retained := 1 - i.elapsedDays(now)*confidenceDecayPerDay
	if retained < ConfidenceFloor {
		retained = ConfidenceFloor
	}

	decayed := i.Confidence * retained
	if decayed < 0 {
		return 0
	}
	if decayed > 1 {
		return 1
	}

	return decayed
}

// LikelyAvailable reports whether the item can be assumed on hand. Advisory
// only: it feeds scoring and must never hard-block a decision.
func (i InventoryItem) LikelyAvailable(now time.Time, threshold float64) bool {
	if i.DecayedConfidence(now) < threshold {
		return false
	}

	if remaining, known := i.RemainingQty(now); known && remaining <= 0 {
		return false
	}

	return true
}
