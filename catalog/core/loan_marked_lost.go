package core

import (
	"time"
)

// LoanMarkedLostEventType is the event type identifier.
const LoanMarkedLostEventType = "LoanMarkedLost"

// LoanMarkedLost records that a lent copy was reported lost.
type LoanMarkedLost struct {
	EventType  EventTypeString
	LoanID     string
	MemberID   string
	ISBN       string
	Fine       float64
	OccurredAt OccurredAtTS
}

// BuildLoanMarkedLost creates a new LoanMarkedLost event.
func BuildLoanMarkedLost(loanID, memberID, isbn string, fine float64, occurredAt time.Time) LoanMarkedLost {
	return LoanMarkedLost{
		EventType:  LoanMarkedLostEventType,
		LoanID:     loanID,
		MemberID:   memberID,
		ISBN:       isbn,
		Fine:       fine,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanMarkedLost) IsEventType() string {
	return LoanMarkedLostEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanMarkedLost) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LoanMarkedLost) IsErrorEvent() bool {
	return false
}
