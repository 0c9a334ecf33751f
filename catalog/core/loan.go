package core

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"time"
)

type LoanStatus string

const (
	LoanStatusLoaned   LoanStatus = "L"
	LoanStatusReturned LoanStatus = "R"
	LoanStatusOverdue  LoanStatus = "O"
)

var loanIDPattern = regexp.MustCompile(`^L\d{9}$`)

// Loan links one member to one lent copy of a book.
// A zero ReturnDate means the copy is still out.
type Loan struct {
	ID          string
	MemberID    string
	ISBN        string
	LoanDate    time.Time
	DueDate     time.Time
	ReturnDate  time.Time
	OverdueDays int
	Fine        float64
	Status      LoanStatus
}

// FormatLoanID renders the n-th loan id.
func FormatLoanID(n int) string {
	return fmt.Sprintf("L%09d", n)
}

// Validate checks every field rule and returns all violations joined with ErrInvalidInput.
func (l Loan) Validate() error {
	var errs []error

	if !loanIDPattern.MatchString(l.ID) {
		errs = append(errs, ErrInvalidLoanID)
	}

	if !lengthBetween(l.MemberID, 1, 10) {
		errs = append(errs, ErrInvalidMemberID)
	}

	if !ValidISBN(l.ISBN) {
		errs = append(errs, ErrInvalidISBN)
	}

	if !validDate(l.LoanDate) || !validDate(l.DueDate) {
		errs = append(errs, ErrInvalidDate)
	} else if l.DueDate.Before(l.LoanDate) {
		errs = append(errs, ErrInvalidLoanPeriod)
	}

	if l.Fine < 0 {
		errs = append(errs, ErrInvalidPrice)
	}

	switch l.Status {
	case LoanStatusLoaned, LoanStatusReturned, LoanStatusOverdue:
	default:
		errs = append(errs, ErrInvalidStatus)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidInput}, errs...)...)
	}

	return nil
}

// IsOut reports whether the copy has not come back yet.
func (l Loan) IsOut() bool {
	return l.ReturnDate.IsZero()
}

// IsOverdue reports a loan flagged overdue or carrying overdue days.
func (l Loan) IsOverdue() bool {
	return l.Status == LoanStatusOverdue || l.OverdueDays > 0
}

// HasFineDue reports whether money is owed on the loan.
func (l Loan) HasFineDue() bool {
	return l.Fine > 0
}

func CompareLoanID(a, b Loan) int {
	return cmp.Compare(a.ID, b.ID)
}

// CompareLoanDueDate puts the earliest due date first.
func CompareLoanDueDate(a, b Loan) int {
	return a.DueDate.Compare(b.DueDate)
}

func FormatLoan(l Loan) string {
	return fmt.Sprintf(
		"%s | %-10s | %s | %s -> %s | returned %s | overdue %d | fine %6.2f | %s",
		l.ID, l.MemberID, l.ISBN, FormatDate(l.LoanDate), FormatDate(l.DueDate), FormatDate(l.ReturnDate),
		l.OverdueDays, l.Fine, l.Status,
	)
}
