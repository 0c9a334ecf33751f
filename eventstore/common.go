package eventstore

import (
	"errors"
)

// ErrConcurrencyConflict is returned by Append when the filtered stream moved on since it was queried.
var ErrConcurrencyConflict = errors.New("concurrency conflict, the event stream was modified")

// ErrNoEventsToAppend is returned by Append when called without events.
var ErrNoEventsToAppend = errors.New("no events to append")

// MaxSequenceNumberUint is the highest sequence number of a filtered event stream, 0 for an empty one.
type MaxSequenceNumberUint = uint
