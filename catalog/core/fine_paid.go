package core

import (
	"time"
)

// FinePaidEventType is the event type identifier.
const FinePaidEventType = "FinePaid"

// FinePaid records that a member paid (part of) a fine.
type FinePaid struct {
	EventType  EventTypeString
	LoanID     string
	MemberID   string
	Amount     float64
	Remaining  float64
	OccurredAt OccurredAtTS
}

// BuildFinePaid creates a new FinePaid event.
func BuildFinePaid(loanID, memberID string, amount, remaining float64, occurredAt time.Time) FinePaid {
	return FinePaid{
		EventType:  FinePaidEventType,
		LoanID:     loanID,
		MemberID:   memberID,
		Amount:     amount,
		Remaining:  remaining,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e FinePaid) IsEventType() string {
	return FinePaidEventType
}

// HasOccurredAt returns when this event occurred.
func (e FinePaid) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e FinePaid) IsErrorEvent() bool {
	return false
}
