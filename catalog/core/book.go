package core

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// BookStatus tells whether a title is still lent out.
type BookStatus string

const (
	BookStatusActive       BookStatus = "A"
	BookStatusDiscontinued BookStatus = "D"
)

// Book is a catalog title with its copy counts.
type Book struct {
	ISBN            string
	Title           string
	Author          string
	Publisher       string
	Year            int
	Category        string
	TotalCopies     int
	AvailableCopies int
	Price           float64
	Status          BookStatus
	LoanCount       int
}

// Validate checks every field rule and returns all violations joined with ErrInvalidInput.
func (b Book) Validate() error {
	var errs []error

	if !ValidISBN(b.ISBN) {
		errs = append(errs, ErrInvalidISBN)
	}

	if !lengthBetween(b.Title, 1, 100) {
		errs = append(errs, ErrInvalidTitle)
	}

	if !lengthBetween(b.Author, 1, 50) {
		errs = append(errs, ErrInvalidAuthor)
	}

	if !lengthBetween(b.Publisher, 0, 50) {
		errs = append(errs, ErrInvalidPublisher)
	}

	if b.Year < 1000 || b.Year > 2030 {
		errs = append(errs, ErrInvalidYear)
	}

	if !lengthBetween(b.Category, 0, 30) {
		errs = append(errs, ErrInvalidCategory)
	}

	if b.TotalCopies < 1 || b.AvailableCopies < 0 || b.AvailableCopies > b.TotalCopies {
		errs = append(errs, ErrInvalidCopies)
	}

	if b.Price < 0 {
		errs = append(errs, ErrInvalidPrice)
	}

	if b.Status != BookStatusActive && b.Status != BookStatusDiscontinued {
		errs = append(errs, ErrInvalidStatus)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidInput}, errs...)...)
	}

	return nil
}

// IsAvailable reports whether a copy can be lent right now.
func (b Book) IsAvailable() bool {
	return b.Status == BookStatusActive && b.AvailableCopies > 0
}

// ValidISBN checks an ISBN-13: 13 digits, weights 1 and 3 alternating, sum divisible by 10.
func ValidISBN(isbn string) bool {
	if len(isbn) != 13 {
		return false
	}

	sum := 0
	for i, r := range isbn {
		if r < '0' || r > '9' {
			return false
		}

		digit := int(r - '0')
		if i%2 == 1 {
			digit *= 3
		}
		sum += digit
	}

	return sum%10 == 0
}

func CompareBookISBN(a, b Book) int {
	return cmp.Compare(a.ISBN, b.ISBN)
}

// CompareBookTitle orders case-insensitively by title.
func CompareBookTitle(a, b Book) int {
	return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
}

// CompareBookAuthor orders case-insensitively by author.
func CompareBookAuthor(a, b Book) int {
	return cmp.Compare(strings.ToLower(a.Author), strings.ToLower(b.Author))
}

// CompareBookLoanCountDesc puts the most lent books first.
func CompareBookLoanCountDesc(a, b Book) int {
	return cmp.Compare(b.LoanCount, a.LoanCount)
}

// FormatBook renders one catalog line.
func FormatBook(b Book) string {
	return fmt.Sprintf(
		"%-13s | %-30.30s | %-20.20s | %4d | %-12.12s | %d/%d | %7.2f | %s",
		b.ISBN, b.Title, b.Author, b.Year, b.Category, b.AvailableCopies, b.TotalCopies, b.Price, b.Status,
	)
}

func lengthBetween(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)

	return n >= minLen && n <= maxLen
}
