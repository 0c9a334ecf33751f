package container

// InsertFront prepends a copy of record.
func (c *Container[T]) InsertFront(record T) error {
	if !c.usable() {
		return ErrInvalidArgument
	}

	return c.insertBefore(c.head, record)
}

// InsertRear appends a copy of record.
func (c *Container[T]) InsertRear(record T) error {
	if !c.usable() {
		return ErrInvalidArgument
	}

	return c.insertBefore(nil, record)
}

// InsertAt inserts a copy of record before the element currently at index.
// The valid range is 0..Len(); inserting at Len() appends.
func (c *Container[T]) InsertAt(index int, record T) error {
	if !c.usable() || index < 0 || index > c.count {
		return ErrInvalidArgument
	}

	if index == c.count {
		return c.insertBefore(nil, record)
	}

	at := c.head
	for i := 0; i < index; i++ {
		at = at.next
	}

	return c.insertBefore(at, record)
}

// InsertSorted inserts a copy of record before the first element that compares strictly greater.
// Records equal to existing ones land after all of them.
func (c *Container[T]) InsertSorted(record T) error {
	if !c.usable() || c.cmp == nil {
		return ErrInvalidArgument
	}

	at := c.head
	for at != nil && c.cmp(at.record, record) <= 0 {
		at = at.next
	}

	return c.insertBefore(at, record)
}

func (c *Container[T]) insertBefore(at *Node[T], record T) error {
	n, err := c.newNode(record)
	if err != nil {
		return err
	}

	c.linkBefore(n, at)

	return nil
}
