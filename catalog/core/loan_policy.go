package core

import (
	"time"
)

// LoanPolicy holds the lending rules per membership type.
type LoanPolicy struct {
	RegularLoanLimit  int
	PremiumLoanLimit  int
	RegularLoanDays   int
	PremiumLoanDays   int
	FinePerOverdueDay float64
	RenewalAllowed    bool
}

// DefaultLoanPolicy returns 3/5 loans, 14/21 days, a fine of 1.00 per overdue day and allows renewals.
func DefaultLoanPolicy() LoanPolicy {
	return LoanPolicy{
		RegularLoanLimit:  3,
		PremiumLoanLimit:  5,
		RegularLoanDays:   14,
		PremiumLoanDays:   21,
		FinePerOverdueDay: 1.0,
		RenewalAllowed:    true,
	}
}

// LoanLimit returns the maximum number of simultaneous loans for t.
func (p LoanPolicy) LoanLimit(t MembershipType) int {
	if t == MembershipPremium {
		return p.PremiumLoanLimit
	}

	return p.RegularLoanLimit
}

// LoanDays returns the loan period for t.
func (p LoanPolicy) LoanDays(t MembershipType) int {
	if t == MembershipPremium {
		return p.PremiumLoanDays
	}

	return p.RegularLoanDays
}

// DueDate returns the due date of a loan starting (or renewed) at from.
func (p LoanPolicy) DueDate(from time.Time, t MembershipType) time.Time {
	return Day(from).AddDate(0, 0, p.LoanDays(t))
}

// OverdueDays returns the number of days asOf lies after due, 0 if it does not.
func (p LoanPolicy) OverdueDays(due, asOf time.Time) int {
	return max(DaysBetween(due, asOf), 0)
}

// FineFor returns the fine owed for a copy due at due and returned (or still out) at asOf.
func (p LoanPolicy) FineFor(due, asOf time.Time) float64 {
	return float64(p.OverdueDays(due, asOf)) * p.FinePerOverdueDay
}
