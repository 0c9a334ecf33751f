// Package shell connects the pure catalog core to the event journal and to
// the logging and metrics backends used by the librarian command.
//
// It converts domain events to storable events and back, records them with
// optimistic concurrency and exponential backoff, and adapts zerolog and
// prometheus to the dependency-free Logger and MetricsCollector interfaces.
package shell
