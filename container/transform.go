package container

import (
	"errors"
	"fmt"
	"io"
)

// Reverse reverses the order of the records in place.
func (c *Container[T]) Reverse() error {
	if !c.usable() {
		return ErrInvalidArgument
	}

	if c.count <= 1 {
		return nil
	}

	for n := c.head; n != nil; n = n.prev {
		n.prev, n.next = n.next, n.prev
	}

	c.head, c.tail = c.tail, c.head
	c.touch()

	return nil
}

// ForEach applies action to every record from front to rear.
func (c *Container[T]) ForEach(action func(record *T)) error {
	if !c.usable() || action == nil {
		return ErrInvalidArgument
	}

	for n := c.head; n != nil; n = n.next {
		action(&n.record)
	}

	return nil
}

// Filter returns a new container with the same hooks holding copies of every record satisfying predicate,
// in the same order. On failure nothing partially built survives.
func (c *Container[T]) Filter(predicate func(record *T) bool) (*Container[T], error) {
	if !c.usable() || predicate == nil {
		return nil, ErrInvalidArgument
	}

	return c.copyMatching(predicate)
}

// Clone returns a new container with the same hooks and a private copy of every record, in the same order.
func (c *Container[T]) Clone() (*Container[T], error) {
	if !c.usable() {
		return nil, ErrInvalidArgument
	}

	return c.copyMatching(func(*T) bool { return true })
}

func (c *Container[T]) copyMatching(predicate func(record *T) bool) (*Container[T], error) {
	result := c.emptyLike()

	for n := c.head; n != nil; n = n.next {
		if !predicate(&n.record) {
			continue
		}

		if err := result.InsertRear(n.record); err != nil {
			result.Destroy()

			return nil, err
		}
	}

	return result, nil
}

func (c *Container[T]) emptyLike() *Container[T] {
	return &Container[T]{
		cmp:      c.cmp,
		printer:  c.printer,
		releaser: c.releaser,
		copier:   c.copier,
	}
}

// Values returns a snapshot of the records in order.
// The slice holds shallow copies; mutating them does not affect the container.
func (c *Container[T]) Values() []T {
	if !c.usable() {
		return nil
	}

	values := make([]T, 0, c.count)
	for n := c.head; n != nil; n = n.next {
		values = append(values, n.record)
	}

	return values
}

// Render writes one line per record using the printer hook, falling back to the %v verb.
func (c *Container[T]) Render(w io.Writer) error {
	if !c.usable() || w == nil {
		return ErrInvalidArgument
	}

	for n := c.head; n != nil; n = n.next {
		var line string
		if c.printer != nil {
			line = c.printer(n.record)
		} else {
			line = fmt.Sprintf("%v", n.record)
		}

		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errors.Join(ErrRenderFailed, err)
		}
	}

	return nil
}
