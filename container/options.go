package container

// Option configures a Container at construction time.
type Option[T any] func(*Container[T])

// WithComparator binds the ordering and equality test.
func WithComparator[T any](cmp Comparator[T]) Option[T] {
	return func(c *Container[T]) {
		c.cmp = cmp
	}
}

// WithPrinter binds the rendering hook used by Render.
func WithPrinter[T any](printer Printer[T]) Option[T] {
	return func(c *Container[T]) {
		c.printer = printer
	}
}

// WithReleaser binds the cleanup hook.
// Without a releaser, the stored copy is simply dropped.
func WithReleaser[T any](releaser Releaser[T]) Option[T] {
	return func(c *Container[T]) {
		c.releaser = releaser
	}
}

// WithCopier binds the hook producing the private copy of every inserted record.
// Without a copier, a plain value assignment is used, which is sufficient for records without reference fields.
func WithCopier[T any](copier Copier[T]) Option[T] {
	return func(c *Container[T]) {
		c.copier = copier
	}
}
