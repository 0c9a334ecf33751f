package shell

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

// EventStore is the part of the journal engine the shell needs.
type EventStore interface {
	Query(ctx context.Context, filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint, error)
	Append(ctx context.Context, filter eventstore.Filter, expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint, storableEvents ...eventstore.StorableEvent) error
}

// Logger is satisfied by *slog.Logger and by ZerologAdapter.
type Logger = eventstore.Logger

// MetricsCollector is satisfied by PrometheusCollector.
type MetricsCollector = eventstore.MetricsCollector
