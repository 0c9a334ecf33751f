package container

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned for an absent or destroyed container, an out-of-range index,
	// a foreign node, or a missing comparator for an operation that needs one.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAllocation is returned when the private copy of a record cannot be produced.
	ErrAllocation = errors.New("allocation failed")

	// ErrNotFound is returned when a deletion targets an absent element.
	ErrNotFound = errors.New("element not found")

	// ErrRenderFailed is returned when Render cannot write to its destination.
	ErrRenderFailed = errors.New("rendering records failed")
)

// Comparator returns a negative number if a sorts before b, zero if they are equal, and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Printer renders one record for humans.
type Printer[T any] func(record T) string

// Releaser cleans up a record's internal resources before its node is discarded.
type Releaser[T any] func(record *T)

// Copier produces the private copy stored by the container.
type Copier[T any] func(record T) (T, error)
