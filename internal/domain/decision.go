package domain

import (
	"fmt"
	"strings"
	"time"
)

type EventID string

type DecisionType string

const (
	DecisionCook     DecisionType = "cook"
	DecisionZeroCook DecisionType = "zero_cook"
)

type UserAction string

const (
	UserActionPending  UserAction = "pending"
	UserActionAccepted UserAction = "accepted"
	UserActionRejected UserAction = "rejected"
)

func (a UserAction) Valid() bool {
	switch a {
	case UserActionPending, UserActionAccepted, UserActionRejected:
		return true
	default:
		return false
	}
}

// DRMReason explains why a decision was suppressed in favor of the rescue
// route.
type DRMReason string

const (
	ReasonLowEnergy        DRMReason = "low_energy"
	ReasonCalendarConflict DRMReason = "calendar_conflict"
	ReasonLateNoAction     DRMReason = "late_no_action"
	ReasonTwoRejections    DRMReason = "two_rejections"
)

// DecisionPayload is the closed set of concrete decision shapes. Each variant
// carries a fixed field set; there is deliberately no open map form.
type DecisionPayload interface {
	Type() DecisionType
}

// CookPayload is a concrete cook-this-meal decision.
type CookPayload struct {
	DecisionType     DecisionType `json:"decisionType"`
	EventID          EventID      `json:"eventId"`
	MealKey          MealKey      `json:"mealId"`
	Title            string       `json:"title"`
	Steps            string       `json:"steps"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
	ContextHash      string       `json:"contextHash"`
}

func (p CookPayload) Type() DecisionType { return DecisionCook }

// ZeroCookPayload is the built-in no-ingredients fallback decision, returned
// when the catalog has nothing active to offer.
type ZeroCookPayload struct {
	DecisionType     DecisionType `json:"decisionType"`
	EventID          EventID      `json:"eventId"`
	Title            string       `json:"title"`
	Steps            string       `json:"steps"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
	ContextHash      string       `json:"contextHash"`
}

func (p ZeroCookPayload) Type() DecisionType { return DecisionZeroCook }

// NewZeroCookPayload builds the code-defined rescue meal. It requires no
// catalog rows and no inventory.
func NewZeroCookPayload(eventID EventID, contextHash string) ZeroCookPayload {
	return ZeroCookPayload{
		DecisionType:     DecisionZeroCook,
		EventID:          eventID,
		Title:            "Zero-cook plate",
		Steps:            "Assemble whatever needs no cooking: bread, cheese, fruit, crackers, leftovers straight from the fridge.",
		EstimatedMinutes: 5,
		ContextHash:      contextHash,
	}
}

// DecisionEvent is the audit row appended for every concrete decision. DRM
// routings never produce one. UserAction starts at pending and is mutated by
// a later feedback step.
type DecisionEvent struct {
	ID           EventID
	Household    HouseholdKey
	DecidedAt    time.Time
	DecisionType DecisionType
	MealKey      *MealKey
	ContextHash  string
	Payload      DecisionPayload
	UserAction   UserAction
}

func (e DecisionEvent) Validate() error {
	if strings.TrimSpace(string(e.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(string(e.Household)) == "" {
		return fmt.Errorf("household key is required")
	}
	if e.DecidedAt.IsZero() {
		return fmt.Errorf("decided time is required")
	}
	if !e.UserAction.Valid() {
		return fmt.Errorf("unsupported user action %q", e.UserAction)
	}
	if e.DecisionType == DecisionCook && e.MealKey == nil {
		return fmt.Errorf("cook decision requires a meal key")
	}

	return nil
}

// DecisionResponse is the only shape the arbiter returns: exactly one
// decision object, or null with a rescue reason. Decision is never a list.
type DecisionResponse struct {
	Decision       DecisionPayload `json:"decision"`
	DRMRecommended bool            `json:"drmRecommended"`
	Reason         DRMReason       `json:"reason,omitempty"`
}

// NewRescueResponse builds the DRM routing variant.
func NewRescueResponse(reason DRMReason) DecisionResponse {
	return DecisionResponse{Decision: nil, DRMRecommended: true, Reason: reason}
}

// NewDecisionResponse builds the concrete-decision variant.
func NewDecisionResponse(payload DecisionPayload) DecisionResponse {
	return DecisionResponse{Decision: payload, DRMRecommended: false}
}
