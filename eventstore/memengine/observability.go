package memengine

import (
	"math"
	"time"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgCopyEventsFailed    = "failed to copy events"
	logAttrError              = "error"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
	logAttrMaxSequence        = "max_sequence"

	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried"
	metricJournalSize          = "eventstore_journal_size"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"

	labelOperation  = "operation"
	labelStatus     = "status"
	operationQuery  = "query"
	operationAppend = "append"
	statusSuccess   = "success"
	statusError     = "error"
)

func (es *EventStore) logDebug(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Debug(msg, args...)
	}
}

func (es *EventStore) logInfo(msg string, args ...any) {
	if es.logger != nil {
		es.logger.Info(msg, args...)
	}
}

func (es *EventStore) logError(msg string, err error, args ...any) {
	if es.logger != nil {
		es.logger.Error(msg, append([]any{logAttrError, err.Error()}, args...)...)
	}
}

func (es *EventStore) recordDuration(metric string, duration time.Duration, operation, status string) {
	if es.metricsCollector != nil {
		es.metricsCollector.RecordDuration(metric, duration, map[string]string{
			labelOperation: operation,
			labelStatus:    status,
		})
	}
}

func (es *EventStore) recordValue(metric string, value float64, operation string) {
	if es.metricsCollector != nil {
		es.metricsCollector.RecordValue(metric, value, map[string]string{labelOperation: operation})
	}
}

func (es *EventStore) recordConcurrencyConflict() {
	if es.metricsCollector != nil {
		es.metricsCollector.IncrementCounter(metricConcurrencyConflicts, map[string]string{
			labelOperation:  operationAppend,
			"conflict_type": "concurrency",
		})
	}
}

// toMilliseconds converts d to milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
