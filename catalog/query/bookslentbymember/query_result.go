package bookslentbymember

import (
	"time"
)

// BookInfo describes one book a member holds.
type BookInfo struct {
	LoanID string
	ISBN   string
	Title  string
	Author string
	LentAt time.Time
	DueAt  time.Time
}

// BooksCurrentlyLent is the query result.
type BooksCurrentlyLent struct {
	MemberID string
	Books    []BookInfo
	Count    int
}
