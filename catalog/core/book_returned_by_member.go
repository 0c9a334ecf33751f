package core

import (
	"time"
)

// BookReturnedByMemberEventType is the event type identifier.
const BookReturnedByMemberEventType = "BookReturnedByMember"

// BookReturnedByMember records that a lent copy came back.
type BookReturnedByMember struct {
	EventType  EventTypeString
	LoanID     string
	MemberID   string
	ISBN       string
	Fine       float64
	OccurredAt OccurredAtTS
}

// BuildBookReturnedByMember creates a new BookReturnedByMember event.
func BuildBookReturnedByMember(loanID, memberID, isbn string, fine float64, occurredAt time.Time) BookReturnedByMember {
	return BookReturnedByMember{
		EventType:  BookReturnedByMemberEventType,
		LoanID:     loanID,
		MemberID:   memberID,
		ISBN:       isbn,
		Fine:       fine,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookReturnedByMember) IsEventType() string {
	return BookReturnedByMemberEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturnedByMember) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturnedByMember) IsErrorEvent() bool {
	return false
}
