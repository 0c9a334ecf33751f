package repository

import (
	"errors"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/container"
)

// LoanRepository stores loans ordered by ID and hands out new loan IDs.
type LoanRepository struct {
	loans  *container.Container[core.Loan]
	lastID int
}

func NewLoanRepository() *LoanRepository {
	return &LoanRepository{
		loans: container.New(
			container.WithComparator(core.CompareLoanID),
			container.WithPrinter(core.FormatLoan),
		),
	}
}

// NextID reserves and returns the next loan ID.
func (r *LoanRepository) NextID() string {
	r.lastID++

	return core.FormatLoanID(r.lastID)
}

// Add validates loan and inserts it at its ID position.
func (r *LoanRepository) Add(loan core.Loan) error {
	if err := loan.Validate(); err != nil {
		return err
	}

	if r.loans.Contains(loan) {
		return core.ErrDuplicateLoanID
	}

	return r.loans.InsertSorted(loan)
}

func (r *LoanRepository) FindByID(id string) (core.Loan, error) {
	node := r.loans.Search(core.Loan{ID: id})
	if node == nil {
		return core.Loan{}, core.ErrLoanNotFound
	}

	return *node.Record(), nil
}

func (r *LoanRepository) FindByMember(memberID string) (*container.Container[core.Loan], error) {
	return r.loans.Filter(func(l *core.Loan) bool {
		return l.MemberID == memberID
	})
}

func (r *LoanRepository) FindByBook(isbn string) (*container.Container[core.Loan], error) {
	return r.loans.Filter(func(l *core.Loan) bool {
		return l.ISBN == isbn
	})
}

// Update replaces the stored loan carrying the same ID.
func (r *LoanRepository) Update(loan core.Loan) error {
	if err := loan.Validate(); err != nil {
		return err
	}

	node := r.loans.Search(loan)
	if node == nil {
		return core.ErrLoanNotFound
	}

	*node.Record() = loan

	return nil
}

// Modify applies change to the stored loan in place.
func (r *LoanRepository) Modify(id string, change func(loan *core.Loan)) error {
	node := r.loans.Search(core.Loan{ID: id})
	if node == nil {
		return core.ErrLoanNotFound
	}

	change(node.Record())

	return nil
}

func (r *LoanRepository) Delete(id string) error {
	err := r.loans.DeleteByValue(core.Loan{ID: id})
	if errors.Is(err, container.ErrNotFound) {
		return core.ErrLoanNotFound
	}

	return err
}

// Active returns the loans whose copy has not come back.
func (r *LoanRepository) Active() (*container.Container[core.Loan], error) {
	return r.loans.Filter(func(l *core.Loan) bool {
		return l.IsOut()
	})
}

// Overdue returns the loans flagged overdue or carrying overdue days.
func (r *LoanRepository) Overdue() (*container.Container[core.Loan], error) {
	return r.loans.Filter(func(l *core.Loan) bool {
		return l.IsOverdue()
	})
}

func (r *LoanRepository) Returned() (*container.Container[core.Loan], error) {
	return r.loans.Filter(func(l *core.Loan) bool {
		return !l.IsOut()
	})
}

// MarkReturned closes the loan at returnDate.
func (r *LoanRepository) MarkReturned(id string, returnDate time.Time) error {
	return r.Modify(id, func(l *core.Loan) {
		l.ReturnDate = core.Day(returnDate)
		l.Status = core.LoanStatusReturned
	})
}

// MarkOverdue records the overdue days and the resulting fine.
func (r *LoanRepository) MarkOverdue(id string, overdueDays int, fine float64) error {
	return r.Modify(id, func(l *core.Loan) {
		l.OverdueDays = overdueDays
		l.Fine = fine
		l.Status = core.LoanStatusOverdue
	})
}

func (r *LoanRepository) All() (*container.Container[core.Loan], error) {
	return r.loans.Clone()
}

// ByDateRange returns the loans started between from and until, both inclusive.
func (r *LoanRepository) ByDateRange(from, until time.Time) (*container.Container[core.Loan], error) {
	from, until = core.Day(from), core.Day(until)

	return r.loans.Filter(func(l *core.Loan) bool {
		return !l.LoanDate.Before(from) && !l.LoanDate.After(until)
	})
}

func (r *LoanRepository) Count() int {
	return r.loans.Len()
}

func (r *LoanRepository) ActiveCount() int {
	return countWhere(r.loans, func(l *core.Loan) bool {
		return l.IsOut()
	})
}

func (r *LoanRepository) OverdueCount() int {
	return countWhere(r.loans, func(l *core.Loan) bool {
		return l.IsOverdue()
	})
}
