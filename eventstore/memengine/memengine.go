package memengine

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/container"
	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

type sequencedEvent struct {
	sequence eventstore.MaxSequenceNumberUint
	event    eventstore.StorableEvent
}

// EventStore is an append-only journal of storable events.
type EventStore struct {
	mu           sync.RWMutex
	events       *container.Container[sequencedEvent]
	lastSequence eventstore.MaxSequenceNumberUint

	logger           eventstore.Logger
	metricsCollector eventstore.MetricsCollector
}

// NewEventStore creates an empty EventStore.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{
		events: container.New(
			container.WithCopier(copySequencedEvent),
			container.WithComparator(compareBySequence),
		),
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns the events matching filter in append order,
// together with the highest sequence number among them (0 if none match).
func (es *EventStore) Query(
	ctx context.Context,
	filter eventstore.Filter,
) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint, error) {

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	start := time.Now()

	es.mu.RLock()
	matching, err := es.events.Filter(func(e *sequencedEvent) bool {
		return matches(filter, e.event)
	})
	es.mu.RUnlock()

	if err != nil {
		es.logError(logMsgCopyEventsFailed, err)
		es.recordDuration(metricQueryDuration, time.Since(start), operationQuery, statusError)

		return nil, 0, err
	}
	defer matching.Destroy()

	events := make(eventstore.StorableEvents, 0, matching.Len())
	var maxSequence eventstore.MaxSequenceNumberUint

	for e := range matching.All() {
		events = append(events, e.event)
		maxSequence = e.sequence
	}

	duration := time.Since(start)
	es.logDebug(
		logMsgQueryCompleted,
		logAttrEventCount, len(events),
		logAttrMaxSequence, maxSequence,
		logAttrDurationMS, toMilliseconds(duration),
	)
	es.recordDuration(metricQueryDuration, duration, operationQuery, statusSuccess)
	es.recordValue(metricEventsQueried, float64(len(events)), operationQuery)

	return events, maxSequence, nil
}

// Append stores events if no event matching filter was appended after expectedMaxSequenceNumber.
// All events are stored or none.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvents ...eventstore.StorableEvent,
) error {

	if len(storableEvents) == 0 {
		return eventstore.ErrNoEventsToAppend
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()

	es.mu.Lock()
	defer es.mu.Unlock()

	actual := es.maxSequenceFor(filter)
	if actual != expectedMaxSequenceNumber {
		es.logInfo(
			logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actual,
		)
		es.recordConcurrencyConflict()
		es.recordDuration(metricAppendDuration, time.Since(start), operationAppend, statusError)

		return eventstore.ErrConcurrencyConflict
	}

	appended := 0
	for _, event := range storableEvents {
		err := es.events.InsertRear(sequencedEvent{sequence: es.lastSequence + 1, event: event})
		if err != nil {
			es.rollback(appended)
			es.logError(logMsgCopyEventsFailed, err, logAttrEventCount, len(storableEvents))
			es.recordDuration(metricAppendDuration, time.Since(start), operationAppend, statusError)

			return err
		}

		es.lastSequence++
		appended++
	}

	duration := time.Since(start)
	es.logDebug(
		logMsgEventsAppended,
		logAttrEventCount, appended,
		logAttrMaxSequence, es.lastSequence,
		logAttrDurationMS, toMilliseconds(duration),
	)
	es.recordDuration(metricAppendDuration, duration, operationAppend, statusSuccess)
	es.recordValue(metricJournalSize, float64(es.events.Len()), operationAppend)

	return nil
}

// Len returns the number of stored events.
func (es *EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return es.events.Len()
}

// maxSequenceFor scans from the newest event backwards; the first match carries the max sequence number.
func (es *EventStore) maxSequenceFor(filter eventstore.Filter) eventstore.MaxSequenceNumberUint {
	for e := range es.events.Backward() {
		if matches(filter, e.event) {
			return e.sequence
		}
	}

	return 0
}

func (es *EventStore) rollback(appended int) {
	for i := 0; i < appended; i++ {
		_ = es.events.DeleteRear()
		es.lastSequence--
	}
}

func matches(filter eventstore.Filter, event eventstore.StorableEvent) bool {
	if from := filter.OccurredFrom(); !from.IsZero() && event.OccurredAt.Before(from) {
		return false
	}

	if until := filter.OccurredUntil(); !until.IsZero() && event.OccurredAt.After(until) {
		return false
	}

	if len(filter.Items()) == 0 {
		return true
	}

	for _, item := range filter.Items() {
		if itemMatches(item, event) {
			return true
		}
	}

	return false
}

func itemMatches(item eventstore.FilterItem, event eventstore.StorableEvent) bool {
	if len(item.EventTypes()) > 0 && !slices.Contains(item.EventTypes(), event.EventType) {
		return false
	}

	predicates := item.Predicates()
	if len(predicates) == 0 {
		return true
	}

	if item.AllPredicatesMustMatch() {
		for _, p := range predicates {
			if !predicateMatches(p, event.PayloadJSON) {
				return false
			}
		}

		return true
	}

	for _, p := range predicates {
		if predicateMatches(p, event.PayloadJSON) {
			return true
		}
	}

	return false
}

func predicateMatches(predicate eventstore.FilterPredicate, payloadJSON []byte) bool {
	field := jsoniter.Get(payloadJSON, predicate.Key())
	if field.ValueType() == jsoniter.InvalidValue || field.ValueType() == jsoniter.NilValue {
		return false
	}

	return field.ToString() == predicate.Val()
}

func copySequencedEvent(e sequencedEvent) (sequencedEvent, error) {
	e.event.PayloadJSON = slices.Clone(e.event.PayloadJSON)
	e.event.MetadataJSON = slices.Clone(e.event.MetadataJSON)

	return e, nil
}

func compareBySequence(a, b sequencedEvent) int {
	return cmp.Compare(a.sequence, b.sequence)
}
