package container

import (
	"errors"
)

// Node wraps exactly one stored record and its links.
type Node[T any] struct {
	record T
	prev   *Node[T]
	next   *Node[T]
	owner  *Container[T]
}

// Record returns a mutable reference to the record stored in the container.
func (n *Node[T]) Record() *T {
	return &n.record
}

// Next returns the successor node or nil at the rear.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the predecessor node or nil at the front.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Container is a doubly linked, homogeneous sequence of records.
//
// Invariants between operations:
//   - count == 0 iff head and tail are both nil
//   - with count == 1, head == tail and the node has no neighbours
//   - every node's neighbours point back to it
//   - count equals the number of nodes reachable from head and from tail
type Container[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	count int

	cmp      Comparator[T]
	printer  Printer[T]
	releaser Releaser[T]
	copier   Copier[T]

	generation uint64
	destroyed  bool
}

// New creates an empty Container bound to the given hooks.
func New[T any](options ...Option[T]) *Container[T] {
	c := &Container[T]{}

	for _, option := range options {
		option(c)
	}

	return c
}

// Destroy releases every remaining record and retires the container.
// All later operations on a destroyed container fail with ErrInvalidArgument.
func (c *Container[T]) Destroy() {
	if c == nil || c.destroyed {
		return
	}

	c.Clear()
	c.destroyed = true
}

// Clear releases every record and leaves an empty, usable container.
func (c *Container[T]) Clear() {
	if c == nil || c.destroyed {
		return
	}

	for n := c.head; n != nil; {
		next := n.next
		c.release(n)
		n = next
	}

	c.head = nil
	c.tail = nil
	c.count = 0
	c.touch()
}

// Len returns the number of stored records. A nil or destroyed container has none.
func (c *Container[T]) Len() int {
	if !c.usable() {
		return 0
	}

	return c.count
}

// IsEmpty reports whether the container holds no records.
func (c *Container[T]) IsEmpty() bool {
	return c.Len() == 0
}

// Front returns the first node or nil.
func (c *Container[T]) Front() *Node[T] {
	if !c.usable() {
		return nil
	}

	return c.head
}

// Back returns the last node or nil.
func (c *Container[T]) Back() *Node[T] {
	if !c.usable() {
		return nil
	}

	return c.tail
}

// HasComparator reports whether a comparator was bound at construction.
func (c *Container[T]) HasComparator() bool {
	return c.usable() && c.cmp != nil
}

func (c *Container[T]) usable() bool {
	return c != nil && !c.destroyed
}

// touch marks a structural mutation for iterator validity checks.
func (c *Container[T]) touch() {
	c.generation++
}

// newNode creates a detached node holding the private copy of record.
func (c *Container[T]) newNode(record T) (*Node[T], error) {
	stored := record

	if c.copier != nil {
		copied, err := c.copier(record)
		if err != nil {
			return nil, errors.Join(ErrAllocation, err)
		}

		stored = copied
	}

	return &Node[T]{record: stored, owner: c}, nil
}

// linkBefore inserts the detached node n in front of at; a nil at appends to the rear.
func (c *Container[T]) linkBefore(n *Node[T], at *Node[T]) {
	if at == nil {
		n.prev = c.tail
		n.next = nil

		if c.tail != nil {
			c.tail.next = n
		} else {
			c.head = n
		}

		c.tail = n
	} else {
		n.prev = at.prev
		n.next = at

		if at.prev != nil {
			at.prev.next = n
		} else {
			c.head = n
		}

		at.prev = n
	}

	c.count++
	c.touch()
}

// unlink detaches n from its neighbours and fixes head and tail at the boundaries.
func (c *Container[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	c.count--
	c.touch()
}

func (c *Container[T]) release(n *Node[T]) {
	if c.releaser != nil {
		c.releaser(&n.record)
	}

	var zero T
	n.record = zero
	n.prev = nil
	n.next = nil
	n.owner = nil
}
