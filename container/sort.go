package container

// Sort stably sorts the records by the bound comparator.
// It fails with ErrInvalidArgument if no comparator is bound.
func (c *Container[T]) Sort() error {
	if !c.usable() {
		return ErrInvalidArgument
	}

	return c.SortWith(c.cmp)
}

// SortWith stably sorts the records by cmp without rebinding the container's comparator.
func (c *Container[T]) SortWith(cmp Comparator[T]) error {
	if !c.usable() || cmp == nil {
		return ErrInvalidArgument
	}

	if c.count <= 1 {
		return nil
	}

	c.head = mergeSort(c.head, cmp)
	c.relinkBackward()
	c.touch()

	return nil
}

// IsSorted reports whether every adjacent pair is in comparator order.
// Without a comparator it reports false.
func (c *Container[T]) IsSorted() bool {
	if !c.usable() || c.cmp == nil {
		return false
	}

	for n := c.head; n != nil && n.next != nil; n = n.next {
		if c.cmp(n.record, n.next.record) > 0 {
			return false
		}
	}

	return true
}

// mergeSort sorts the chain starting at head and returns the new head.
// Only next links are meaningful on return.
func mergeSort[T any](head *Node[T], cmp Comparator[T]) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	left, right := split(head)

	return merge(mergeSort(left, cmp), mergeSort(right, cmp), cmp)
}

// split cuts the chain after its midpoint. For odd lengths the left half is the longer one.
func split[T any](head *Node[T]) (*Node[T], *Node[T]) {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right := slow.next
	slow.next = nil

	return head, right
}

// merge takes from the left chain on ties, which keeps the sort stable.
func merge[T any](left, right *Node[T], cmp Comparator[T]) *Node[T] {
	var anchor Node[T]
	tail := &anchor

	for left != nil && right != nil {
		if cmp(left.record, right.record) <= 0 {
			tail.next = left
			left = left.next
		} else {
			tail.next = right
			right = right.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}

	return anchor.next
}

// relinkBackward rebuilds every prev link and the tail from the next links.
func (c *Container[T]) relinkBackward() {
	var prev *Node[T]
	for n := c.head; n != nil; n = n.next {
		n.prev = prev
		prev = n
	}

	c.tail = prev
}
