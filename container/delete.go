package container

// DeleteFront removes the first record.
func (c *Container[T]) DeleteFront() error {
	if !c.usable() {
		return ErrInvalidArgument
	}

	if c.head == nil {
		return ErrNotFound
	}

	return c.DeleteNode(c.head)
}

// DeleteRear removes the last record.
func (c *Container[T]) DeleteRear() error {
	if !c.usable() {
		return ErrInvalidArgument
	}

	if c.tail == nil {
		return ErrNotFound
	}

	return c.DeleteNode(c.tail)
}

// DeleteAt removes the record at index (0..Len()-1).
func (c *Container[T]) DeleteAt(index int) error {
	n := c.NodeAt(index)
	if n == nil {
		return ErrInvalidArgument
	}

	return c.DeleteNode(n)
}

// DeleteByValue removes the first record comparing equal to record.
// Without a comparator nothing ever matches.
func (c *Container[T]) DeleteByValue(record T) error {
	if !c.usable() {
		return ErrInvalidArgument
	}

	n := c.Search(record)
	if n == nil {
		return ErrNotFound
	}

	return c.DeleteNode(n)
}

// DeleteNode removes n, which must belong to this container.
func (c *Container[T]) DeleteNode(n *Node[T]) error {
	if !c.usable() || n == nil || n.owner != c {
		return ErrInvalidArgument
	}

	c.unlink(n)
	c.release(n)

	return nil
}
