package container

// Search returns the first node whose record compares equal to record, or nil.
// Without a comparator it always returns nil.
func (c *Container[T]) Search(record T) *Node[T] {
	if !c.usable() || c.cmp == nil {
		return nil
	}

	for n := c.head; n != nil; n = n.next {
		if c.cmp(n.record, record) == 0 {
			return n
		}
	}

	return nil
}

// FindIf returns the first node whose record satisfies predicate, or nil.
// It does not need a comparator.
func (c *Container[T]) FindIf(predicate func(record *T) bool) *Node[T] {
	if !c.usable() || predicate == nil {
		return nil
	}

	for n := c.head; n != nil; n = n.next {
		if predicate(&n.record) {
			return n
		}
	}

	return nil
}

// NodeAt returns the node at index, or nil if index is out of range.
// It walks from whichever end is closer.
func (c *Container[T]) NodeAt(index int) *Node[T] {
	if !c.usable() || index < 0 || index >= c.count {
		return nil
	}

	if index < c.count/2 {
		n := c.head
		for i := 0; i < index; i++ {
			n = n.next
		}

		return n
	}

	n := c.tail
	for i := c.count - 1; i > index; i-- {
		n = n.prev
	}

	return n
}

// At returns a mutable reference to the record at index.
func (c *Container[T]) At(index int) (*T, bool) {
	n := c.NodeAt(index)
	if n == nil {
		return nil, false
	}

	return &n.record, true
}

// IndexOf returns the zero-based position of the first record comparing equal to record,
// or -1 if there is none or no comparator is bound.
func (c *Container[T]) IndexOf(record T) int {
	if !c.usable() || c.cmp == nil {
		return -1
	}

	i := 0
	for n := c.head; n != nil; n = n.next {
		if c.cmp(n.record, record) == 0 {
			return i
		}
		i++
	}

	return -1
}

// Contains reports whether a record comparing equal to record is stored.
func (c *Container[T]) Contains(record T) bool {
	return c.Search(record) != nil
}
