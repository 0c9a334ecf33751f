package core

import (
	"time"
)

// MemberStatusChangedEventType is the event type identifier.
const MemberStatusChangedEventType = "MemberStatusChanged"

// MemberStatusChanged records that a member was suspended, reactivated or deactivated.
type MemberStatusChanged struct {
	EventType  EventTypeString
	MemberID   string
	Status     string
	OccurredAt OccurredAtTS
}

// BuildMemberStatusChanged creates a new MemberStatusChanged event.
func BuildMemberStatusChanged(memberID string, status MemberStatus, occurredAt time.Time) MemberStatusChanged {
	return MemberStatusChanged{
		EventType:  MemberStatusChangedEventType,
		MemberID:   memberID,
		Status:     string(status),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MemberStatusChanged) IsEventType() string {
	return MemberStatusChangedEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberStatusChanged) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e MemberStatusChanged) IsErrorEvent() bool {
	return false
}
