package newarrivals

import (
	"time"
)

// BookInfo describes one newly added book.
type BookInfo struct {
	ISBN     string
	Title    string
	Author   string
	Category string
	Copies   int
	AddedAt  time.Time
}

// NewArrivals is the query result.
type NewArrivals struct {
	Books []BookInfo
	Count int
}
