package core

import (
	"time"
)

// LendingBookToMemberFailedEventType is the event type identifier.
const LendingBookToMemberFailedEventType = "LendingBookToMemberFailed"

// LendingBookToMemberFailed records that a lending request was rejected.
type LendingBookToMemberFailed struct {
	EventType   EventTypeString
	MemberID    string
	ISBN        string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildLendingBookToMemberFailed creates a new LendingBookToMemberFailed event.
func BuildLendingBookToMemberFailed(memberID, isbn, failureInfo string, occurredAt time.Time) LendingBookToMemberFailed {
	return LendingBookToMemberFailed{
		EventType:   LendingBookToMemberFailedEventType,
		MemberID:    memberID,
		ISBN:        isbn,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LendingBookToMemberFailed) IsEventType() string {
	return LendingBookToMemberFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingBookToMemberFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since the request was rejected.
func (e LendingBookToMemberFailed) IsErrorEvent() bool {
	return true
}
