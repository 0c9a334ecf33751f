package memengine

import (
	"errors"

	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

var (
	// ErrNilLogger is returned when WithLogger receives nil.
	ErrNilLogger = errors.New("logger must not be nil")

	// ErrNilMetricsCollector is returned when WithMetrics receives nil.
	ErrNilMetricsCollector = errors.New("metrics collector must not be nil")
)

// Option defines a functional option for configuring EventStore.
type Option func(*EventStore) error

// WithLogger sets the logger for the EventStore.
//
// Debug level: query/append details with timing
// Info level: concurrency conflicts
// Error level: failures that abort an operation
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		if logger == nil {
			return ErrNilLogger
		}

		es.logger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the EventStore.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		es.metricsCollector = collector

		return nil
	}
}
