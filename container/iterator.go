package container

import (
	"iter"
)

// Direction is the traversal direction an Iterator is bound to.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// Iterator is a non-owning cursor over a container's nodes.
//
// A structural mutation of the container while the iterator is active is a caller error.
// Valid reports whether one has happened since the iterator was created or last reset.
type Iterator[T any] struct {
	container  *Container[T]
	current    *Node[T]
	direction  Direction
	generation uint64
}

// Iterator returns a cursor starting at the front.
func (c *Container[T]) Iterator() *Iterator[T] {
	return c.newIterator(DirectionForward)
}

// ReverseIterator returns a cursor starting at the rear.
func (c *Container[T]) ReverseIterator() *Iterator[T] {
	return c.newIterator(DirectionBackward)
}

func (c *Container[T]) newIterator(direction Direction) *Iterator[T] {
	it := &Iterator[T]{container: c, direction: direction}
	it.Reset()

	return it
}

// HasNext reports whether the cursor is on a node.
func (it *Iterator[T]) HasNext() bool {
	return it != nil && it.current != nil
}

// Next returns the current record and advances the cursor.
func (it *Iterator[T]) Next() (*T, bool) {
	if !it.HasNext() {
		return nil, false
	}

	n := it.current
	if it.direction == DirectionForward {
		it.current = n.next
	} else {
		it.current = n.prev
	}

	return &n.record, true
}

// Current returns the current record without advancing.
func (it *Iterator[T]) Current() (*T, bool) {
	if !it.HasNext() {
		return nil, false
	}

	return &it.current.record, true
}

// Reset rewinds the cursor to the front, or the rear for a reverse iterator.
func (it *Iterator[T]) Reset() {
	if it == nil {
		return
	}

	it.current = nil
	it.generation = 0

	c := it.container
	if !c.usable() {
		return
	}

	if it.direction == DirectionForward {
		it.current = c.head
	} else {
		it.current = c.tail
	}

	it.generation = c.generation
}

// Direction returns the direction the iterator is bound to.
func (it *Iterator[T]) Direction() Direction {
	return it.direction
}

// Valid reports whether the container is unchanged structurally since the last Reset.
func (it *Iterator[T]) Valid() bool {
	return it != nil && it.container.usable() && it.generation == it.container.generation
}

// All yields a mutable reference to every record from front to rear.
func (c *Container[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if !c.usable() {
			return
		}

		for n := c.head; n != nil; n = n.next {
			if !yield(&n.record) {
				return
			}
		}
	}
}

// Backward yields a mutable reference to every record from rear to front.
func (c *Container[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if !c.usable() {
			return
		}

		for n := c.tail; n != nil; n = n.prev {
			if !yield(&n.record) {
				return
			}
		}
	}
}
