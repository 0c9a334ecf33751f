package core

import (
	"time"
)

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent is something that happened in the catalog.
type DomainEvent interface {
	// IsEventType returns the string identifier for this event type.
	IsEventType() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time

	// IsErrorEvent returns true if this event records a rejected request.
	IsErrorEvent() bool
}

// EventTypeString is the event type identifier carried in every payload.
type EventTypeString = string

// OccurredAtTS is the time an event occurred.
type OccurredAtTS = time.Time

// ToOccurredAt normalizes t to UTC with microsecond precision.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
