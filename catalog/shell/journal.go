package shell

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

// ErrNilEventStore is returned by NewJournal without an event store.
var ErrNilEventStore = errors.New("event store must not be nil")

// ErrNilLogger is returned when a nil logger is provided.
var ErrNilLogger = errors.New("logger must not be nil")

const (
	logMsgEventRecorded  = "domain event recorded"
	logMsgRecordFailed   = "recording domain event failed"
	logAttrEventType     = "event_type"
	logAttrErrorEvent    = "error_event"
	logAttrDurationMS    = "duration_ms"
	recordDurationMetric = "catalog_journal_record_duration_seconds"
	recordOperation      = "record"
	labelEventType       = "event_type"
	labelStatus          = "status"
)

// Journal records catalog domain events and reads them back.
// Each event is appended to its own stream: the events sharing its loan, member or ISBN key.
type Journal struct {
	store            EventStore
	logger           Logger
	metricsCollector MetricsCollector
	retryOptions     []RetryOption
}

// JournalOption configures a Journal.
type JournalOption func(*Journal) error

// WithJournalLogger sets the logger for recorded events and failures.
func WithJournalLogger(logger Logger) JournalOption {
	return func(j *Journal) error {
		if logger == nil {
			return ErrNilLogger
		}

		j.logger = logger

		return nil
	}
}

// WithJournalMetrics records durations and retries.
func WithJournalMetrics(collector MetricsCollector) JournalOption {
	return func(j *Journal) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		j.metricsCollector = collector

		return nil
	}
}

// WithJournalRetry overrides the retry behavior of Record.
func WithJournalRetry(options ...RetryOption) JournalOption {
	return func(j *Journal) error {
		j.retryOptions = append(j.retryOptions, options...)

		return nil
	}
}

// NewJournal creates a Journal on top of store.
func NewJournal(store EventStore, options ...JournalOption) (*Journal, error) {
	if store == nil {
		return nil, ErrNilEventStore
	}

	j := &Journal{store: store}

	for _, option := range options {
		if err := option(j); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// Record appends event to its stream. The append is guarded by the stream's
// current max sequence number and retried on concurrency conflicts.
func (j *Journal) Record(ctx context.Context, event core.DomainEvent) error {
	start := time.Now()

	storableEvent, err := StorableEventFrom(event, BuildRootEventMetadata())
	if err != nil {
		return err
	}

	filter := StreamFilterFor(event)

	retryOptions := j.retryOptions
	if j.metricsCollector != nil {
		retryOptions = append(retryOptions[:len(retryOptions):len(retryOptions)], WithRetryMetrics(j.metricsCollector, recordOperation))
	}

	err = RetryWithExponentialBackoff(
		ctx,
		func(ctx context.Context) error {
			_, maxSequenceNumber, queryErr := j.store.Query(ctx, filter)
			if queryErr != nil {
				return queryErr
			}

			return j.store.Append(ctx, filter, maxSequenceNumber, storableEvent)
		},
		retryOptions...,
	)

	j.observe(event, time.Since(start), err)

	return err
}

// History returns the domain events matching filter in the order they were recorded.
func (j *Journal) History(ctx context.Context, filter eventstore.Filter) (core.DomainEvents, error) {
	storableEvents, _, err := j.store.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	return DomainEventsFrom(storableEvents)
}

// StreamFilterFor returns the filter selecting the stream event belongs to.
func StreamFilterFor(event core.DomainEvent) eventstore.Filter {
	key, value := streamKeyOf(event)

	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P(key, value)).
		Finalize()
}

func streamKeyOf(event core.DomainEvent) (string, string) {
	switch e := event.(type) {
	case core.BookAddedToCatalog:
		return "ISBN", e.ISBN
	case core.BookRemovedFromCatalog:
		return "ISBN", e.ISBN
	case core.MemberRegistered:
		return "MemberID", e.MemberID
	case core.MemberStatusChanged:
		return "MemberID", e.MemberID
	case core.LendingBookToMemberFailed:
		return "MemberID", e.MemberID
	case core.BookLentToMember:
		return "LoanID", e.LoanID
	case core.BookReturnedByMember:
		return "LoanID", e.LoanID
	case core.LoanRenewed:
		return "LoanID", e.LoanID
	case core.LoanMarkedLost:
		return "LoanID", e.LoanID
	case core.FinePaid:
		return "LoanID", e.LoanID
	default:
		return "EventType", event.IsEventType()
	}
}

func (j *Journal) observe(event core.DomainEvent, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	if j.metricsCollector != nil {
		j.metricsCollector.RecordDuration(recordDurationMetric, duration, map[string]string{
			labelEventType: event.IsEventType(),
			labelStatus:    status,
		})
	}

	if j.logger == nil {
		return
	}

	if err != nil {
		j.logger.Error(logMsgRecordFailed, logAttrEventType, event.IsEventType(), "error", err.Error())

		return
	}

	j.logger.Debug(logMsgEventRecorded,
		logAttrEventType, event.IsEventType(),
		logAttrErrorEvent, event.IsErrorEvent(),
		logAttrDurationMS, float64(duration.Microseconds())/1000,
	)
}
