package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshalPayload[core.BookAddedToCatalog](storableEvent.PayloadJSON)

	case core.BookRemovedFromCatalogEventType:
		return unmarshalPayload[core.BookRemovedFromCatalog](storableEvent.PayloadJSON)

	case core.MemberRegisteredEventType:
		return unmarshalPayload[core.MemberRegistered](storableEvent.PayloadJSON)

	case core.MemberStatusChangedEventType:
		return unmarshalPayload[core.MemberStatusChanged](storableEvent.PayloadJSON)

	case core.BookLentToMemberEventType:
		return unmarshalPayload[core.BookLentToMember](storableEvent.PayloadJSON)

	case core.LendingBookToMemberFailedEventType:
		return unmarshalPayload[core.LendingBookToMemberFailed](storableEvent.PayloadJSON)

	case core.BookReturnedByMemberEventType:
		return unmarshalPayload[core.BookReturnedByMember](storableEvent.PayloadJSON)

	case core.LoanRenewedEventType:
		return unmarshalPayload[core.LoanRenewed](storableEvent.PayloadJSON)

	case core.LoanMarkedLostEventType:
		return unmarshalPayload[core.LoanMarkedLost](storableEvent.PayloadJSON)

	case core.FinePaidEventType:
		return unmarshalPayload[core.FinePaid](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
