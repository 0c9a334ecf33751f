package core

import (
	"errors"
	"time"
)

// DateLayout is the textual form of every catalog date.
const DateLayout = "2006-01-02"

const (
	minDateYear = 1900
	maxDateYear = 2100
)

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidInput, ErrInvalidDate, err)
	}

	if date.Year() < minDateYear || date.Year() > maxDateYear {
		return time.Time{}, errors.Join(ErrInvalidInput, ErrInvalidDate)
	}

	return date, nil
}

// MustParseDate is ParseDate for constants known to be valid. It panics otherwise.
func MustParseDate(value string) time.Time {
	date, err := ParseDate(value)
	if err != nil {
		panic(err)
	}

	return date
}

// FormatDate renders t as YYYY-MM-DD, or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Format(DateLayout)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from from to to, negative if to is earlier.
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}

func validDate(t time.Time) bool {
	return !t.IsZero() && t.Year() >= minDateYear && t.Year() <= maxDateYear
}
