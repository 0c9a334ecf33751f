package core

import (
	"time"
)

// MemberRegisteredEventType is the event type identifier.
const MemberRegisteredEventType = "MemberRegistered"

// MemberRegistered records that a member joined the library.
type MemberRegistered struct {
	EventType      EventTypeString
	MemberID       string
	Name           string
	MembershipType string
	OccurredAt     OccurredAtTS
}

// BuildMemberRegistered creates a new MemberRegistered event.
func BuildMemberRegistered(memberID, name string, membershipType MembershipType, occurredAt time.Time) MemberRegistered {
	return MemberRegistered{
		EventType:      MemberRegisteredEventType,
		MemberID:       memberID,
		Name:           name,
		MembershipType: string(membershipType),
		OccurredAt:     ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MemberRegistered) IsEventType() string {
	return MemberRegisteredEventType
}

// HasOccurredAt returns when this event occurred.
func (e MemberRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e MemberRegistered) IsErrorEvent() bool {
	return false
}
