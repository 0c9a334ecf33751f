package memengine_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/eventstore"
	"github.com/AntonStoeckl/library-catalog-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-catalog-go/testutil/helper"
)

const (
	lentEventType     = "BookLentToMember"
	returnedEventType = "BookReturnedByMember"
)

func Test_Query_ReturnsMatchingEventsInAppendOrder_WithMaxSequence(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := newEventStore(t)
	anyEvent := eventstore.BuildEventFilter().MatchingAnyEvent()

	require.NoError(t, es.Append(ctx, anyEvent, 0,
		givenEvent(t, lentEventType, "M001", "9780132350884", time.Now()),
		givenEvent(t, lentEventType, "M002", "9780134685991", time.Now()),
		givenEvent(t, returnedEventType, "M001", "9780132350884", time.Now()),
	))

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(lentEventType, returnedEventType).
		AndAnyPredicateOf(eventstore.P("MemberID", "M001")).
		Finalize()

	// act
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, lentEventType, events[0].EventType)
	assert.Equal(t, returnedEventType, events[1].EventType)
	assert.Equal(t, uint(3), maxSeq)
	assert.Equal(t, 3, es.Len())
}

func Test_Query_ReturnsZeroSequence_WhenNothingMatches(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := newEventStore(t)
	require.NoError(t, es.Append(ctx, eventstore.BuildEventFilter().MatchingAnyEvent(), 0,
		givenEvent(t, lentEventType, "M001", "9780132350884", time.Now()),
	))

	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("MemberID", "M999")).Finalize()

	// act
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, uint(0), maxSeq)
}

func Test_Query_HonorsAllPredicatesAndTimeBounds(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := newEventStore(t)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, es.Append(ctx, eventstore.BuildEventFilter().MatchingAnyEvent(), 0,
		givenEvent(t, lentEventType, "M001", "9780132350884", day),
		givenEvent(t, lentEventType, "M001", "9780134685991", day.AddDate(0, 0, 1)),
		givenEvent(t, lentEventType, "M002", "9780132350884", day.AddDate(0, 0, 2)),
		givenEvent(t, lentEventType, "M001", "9780132350884", day.AddDate(0, 0, 10)),
	))

	filter := eventstore.BuildEventFilter().
		OccurredFrom(day).
		OccurredUntil(day.AddDate(0, 0, 5)).
		Matching().
		AllPredicatesOf(eventstore.P("MemberID", "M001"), eventstore.P("ISBN", "9780132350884")).
		Finalize()

	// act
	events, maxSeq, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, day, events[0].OccurredAt)
	assert.Equal(t, uint(1), maxSeq)
}

func Test_Query_ReturnsCopies(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := newEventStore(t)
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()
	require.NoError(t, es.Append(ctx, filter, 0, givenEvent(t, lentEventType, "M001", "9780132350884", time.Now())))

	first, _, err := es.Query(ctx, filter)
	require.NoError(t, err)

	// act
	first[0].PayloadJSON[2] = 'X'

	// assert
	second, _, err := es.Query(ctx, filter)
	require.NoError(t, err)
	assert.NotEqual(t, first[0].PayloadJSON, second[0].PayloadJSON)
}

func Test_Append_Fails_WhenStreamMovedOn(t *testing.T) {
	// arrange
	ctx := context.Background()
	logHandler := helper.NewTestLogHandler(false)
	metrics := helper.NewMetricsCollectorSpy(true)
	es := newEventStore(t, memengine.WithLogger(slog.New(logHandler)), memengine.WithMetrics(metrics))

	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("ISBN", "9780132350884")).Finalize()
	_, maxSeq, err := es.Query(ctx, filter)
	require.NoError(t, err)

	require.NoError(t, es.Append(ctx, filter, maxSeq, givenEvent(t, lentEventType, "M001", "9780132350884", time.Now())))

	// act
	err = es.Append(ctx, filter, maxSeq, givenEvent(t, lentEventType, "M002", "9780132350884", time.Now()))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 1, es.Len())
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelInfo, "concurrency conflict detected", "expected_sequence"))
	assert.Equal(t, 1, metrics.CountCounterRecordsForMetric("eventstore_concurrency_conflicts_total"))
	assert.True(t, metrics.HasDurationRecordForMetric("eventstore_append_duration_seconds").WithStatus("error").Assert())
}

func Test_Append_Succeeds_WhenOtherStreamMovedOn(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := newEventStore(t)

	bookA := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("ISBN", "9780132350884")).Finalize()
	bookB := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("ISBN", "9780134685991")).Finalize()

	_, maxSeqB, err := es.Query(ctx, bookB)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, bookA, 0, givenEvent(t, lentEventType, "M001", "9780132350884", time.Now())))

	// act
	err = es.Append(ctx, bookB, maxSeqB, givenEvent(t, lentEventType, "M001", "9780134685991", time.Now()))

	// assert
	assert.NoError(t, err)
	_, maxSeqB, _ = es.Query(ctx, bookB)
	assert.Equal(t, uint(2), maxSeqB)
}

func Test_Append_Fails_WithoutEvents(t *testing.T) {
	// arrange
	es := newEventStore(t)

	// act
	err := es.Append(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent(), 0)

	// assert
	assert.ErrorIs(t, err, eventstore.ErrNoEventsToAppend)
}

func Test_Operations_Fail_WhenContextCanceled(t *testing.T) {
	// arrange
	es := newEventStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()

	// act
	_, _, queryErr := es.Query(ctx, filter)
	appendErr := es.Append(ctx, filter, 0, givenEvent(t, lentEventType, "M001", "9780132350884", time.Now()))

	// assert
	assert.ErrorIs(t, queryErr, context.Canceled)
	assert.ErrorIs(t, appendErr, context.Canceled)
	assert.Equal(t, 0, es.Len())
}

func Test_Observability_RecordsQueryAndAppend(t *testing.T) {
	// arrange
	ctx := context.Background()
	logHandler := helper.NewTestLogHandler(false)
	metrics := helper.NewMetricsCollectorSpy(true)
	es := newEventStore(t, memengine.WithLogger(slog.New(logHandler)), memengine.WithMetrics(metrics))
	filter := eventstore.BuildEventFilter().MatchingAnyEvent()

	// act
	require.NoError(t, es.Append(ctx, filter, 0, givenEvent(t, lentEventType, "M001", "9780132350884", time.Now())))
	_, _, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelDebug, "events appended", "duration_ms"))
	assert.True(t, logHandler.HasLogWithAttr(slog.LevelDebug, "query completed", "event_count"))
	assert.True(t, metrics.HasDurationRecordForMetric("eventstore_query_duration_seconds").WithOperation("query").WithStatus("success").Assert())
	assert.True(t, metrics.HasValueRecordForMetric("eventstore_journal_size").WithOperation("append").Assert())
}

func Test_NewEventStore_RejectsNilCollaborators(t *testing.T) {
	_, errLogger := memengine.NewEventStore(memengine.WithLogger(nil))
	_, errMetrics := memengine.NewEventStore(memengine.WithMetrics(nil))

	assert.ErrorIs(t, errLogger, memengine.ErrNilLogger)
	assert.ErrorIs(t, errMetrics, memengine.ErrNilMetricsCollector)
}

func Test_Append_ConcurrentWritersOnSameStream_OnlyOneWinsPerSequence(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := newEventStore(t)
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("ISBN", "9780132350884")).Finalize()

	var wg sync.WaitGroup
	var mu sync.Mutex
	conflicts := 0

	// act
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			err := es.Append(ctx, filter, 0, givenEvent(t, lentEventType, fmt.Sprintf("M%03d", i), "9780132350884", time.Now()))
			if errors.Is(err, eventstore.ErrConcurrencyConflict) {
				mu.Lock()
				conflicts++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	// assert
	assert.Equal(t, 1, es.Len())
	assert.Equal(t, 9, conflicts)
}

func newEventStore(t *testing.T, options ...memengine.Option) *memengine.EventStore {
	t.Helper()

	es, err := memengine.NewEventStore(options...)
	require.NoError(t, err)

	return es
}

func givenEvent(t testing.TB, eventType, memberID, isbn string, occurredAt time.Time) eventstore.StorableEvent {
	payload := fmt.Sprintf(`{"MemberID":%q,"ISBN":%q}`, memberID, isbn)

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, occurredAt, []byte(payload))
	assert.NoError(t, err, "error in arranging test data")

	return event
}
