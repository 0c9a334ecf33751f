package core

import (
	"time"
)

// LoanRenewedEventType is the event type identifier.
const LoanRenewedEventType = "LoanRenewed"

// LoanRenewed records that a loan was extended.
type LoanRenewed struct {
	EventType  EventTypeString
	LoanID     string
	MemberID   string
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildLoanRenewed creates a new LoanRenewed event.
func BuildLoanRenewed(loanID, memberID string, dueDate time.Time, occurredAt time.Time) LoanRenewed {
	return LoanRenewed{
		EventType:  LoanRenewedEventType,
		LoanID:     loanID,
		MemberID:   memberID,
		DueDate:    dueDate,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LoanRenewed) IsEventType() string {
	return LoanRenewedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LoanRenewed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e LoanRenewed) IsErrorEvent() bool {
	return false
}
