package core

import (
	"strings"
)

// BookSearchCriteria combines optional conditions; empty fields are ignored.
type BookSearchCriteria struct {
	ISBN          string // exact
	Title         string // case-insensitive substring
	Author        string // case-insensitive substring
	Category      string // exact
	OnlyAvailable bool
}

// Matches reports whether b satisfies every set condition.
func (c BookSearchCriteria) Matches(b Book) bool {
	if c.ISBN != "" && b.ISBN != c.ISBN {
		return false
	}

	if c.Title != "" && !containsFold(b.Title, c.Title) {
		return false
	}

	if c.Author != "" && !containsFold(b.Author, c.Author) {
		return false
	}

	if c.Category != "" && b.Category != c.Category {
		return false
	}

	if c.OnlyAvailable && b.AvailableCopies <= 0 {
		return false
	}

	return true
}

// MemberSearchCriteria combines optional conditions; empty fields are ignored.
type MemberSearchCriteria struct {
	Name       string // case-insensitive substring
	Email      string // exact
	Phone      string // exact
	OnlyActive bool
}

// Matches reports whether m satisfies every set condition.
func (c MemberSearchCriteria) Matches(m Member) bool {
	if c.Name != "" && !containsFold(m.Name, c.Name) {
		return false
	}

	if c.Email != "" && m.Email != c.Email {
		return false
	}

	if c.Phone != "" && m.Phone != c.Phone {
		return false
	}

	if c.OnlyActive && !m.IsActive() {
		return false
	}

	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
