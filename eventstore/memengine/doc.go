// Package memengine implements an in-process event journal.
//
// Events are kept in append order in a container.Container; every stored event
// owns private copies of its JSON payload and metadata, and Query hands out
// copies as well. Filters are evaluated against the payload with json-iterator.
//
// Append implements optimistic concurrency: the caller passes the max sequence
// number it observed for the same filter, and the append fails with
// eventstore.ErrConcurrencyConflict if matching events were appended since.
//
// Unlike the container it is built on, an EventStore is safe for concurrent use.
package memengine
