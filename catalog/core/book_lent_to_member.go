package core

import (
	"time"
)

// BookLentToMemberEventType is the event type identifier.
const BookLentToMemberEventType = "BookLentToMember"

// BookLentToMember records that a copy of a book was lent to a member.
type BookLentToMember struct {
	EventType  EventTypeString
	LoanID     string
	MemberID   string
	ISBN       string
	DueDate    time.Time
	OccurredAt OccurredAtTS
}

// BuildBookLentToMember creates a new BookLentToMember event.
func BuildBookLentToMember(loanID, memberID, isbn string, dueDate time.Time, occurredAt time.Time) BookLentToMember {
	return BookLentToMember{
		EventType:  BookLentToMemberEventType,
		LoanID:     loanID,
		MemberID:   memberID,
		ISBN:       isbn,
		DueDate:    dueDate,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookLentToMember) IsEventType() string {
	return BookLentToMemberEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookLentToMember) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookLentToMember) IsErrorEvent() bool {
	return false
}
