package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/query/bookslentbymember"
	"github.com/AntonStoeckl/library-catalog-go/catalog/repository"
	"github.com/AntonStoeckl/library-catalog-go/container"
)

var (
	// ErrAlreadyHolding is reported by CanBorrow when the member already holds a copy of the title.
	ErrAlreadyHolding = errors.Join(core.ErrDuplicate, errors.New("member already holds a copy of this book"))

	// ErrFineNotFinal is returned when paying for a copy that is still out.
	ErrFineNotFinal = errors.Join(core.ErrNoFineDue, errors.New("the fine is settled once the copy is back"))
)

// OverdueNotice tells a member about one copy past its due date.
type OverdueNotice struct {
	LoanID      string
	MemberID    string
	MemberName  string
	Email       string
	ISBN        string
	Title       string
	DueDate     time.Time
	OverdueDays int
	Fine        float64
}

// LoanService lends, renews and takes back copies and keeps books, members and loans in step.
type LoanService struct {
	settings

	books   *repository.BookRepository
	members *repository.MemberRepository
	loans   *repository.LoanRepository
}

func NewLoanService(
	books *repository.BookRepository,
	members *repository.MemberRepository,
	loans *repository.LoanRepository,
	options ...Option,
) (*LoanService, error) {

	if books == nil || members == nil || loans == nil {
		return nil, ErrNilRepository
	}

	s, err := newSettings(options)
	if err != nil {
		return nil, err
	}

	return &LoanService{settings: s, books: books, members: members, loans: loans}, nil
}

// Borrow lends one copy of the book to the member.
//
// If the member already holds a copy of the book, that loan is returned and nothing changes.
// A rejected request is recorded as LendingBookToMemberFailed and its rule is returned as the error.
func (s *LoanService) Borrow(ctx context.Context, memberID, isbn string) (core.Loan, error) {
	start := time.Now()

	loan, err := s.borrow(ctx, memberID, isbn)
	s.observe("borrow", start, err, logAttrMemberID, memberID, logAttrISBN, isbn, logAttrLoanID, loan.ID)

	return loan, err
}

func (s *LoanService) borrow(ctx context.Context, memberID, isbn string) (core.Loan, error) {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		return core.Loan{}, err
	}

	book, err := s.books.FindByISBN(isbn)
	if err != nil {
		return core.Loan{}, err
	}

	active, err := activeLoansOf(s.loans, memberID)
	if err != nil {
		return core.Loan{}, err
	}

	fines, err := outstandingFinesOf(s.loans, memberID)
	if err != nil {
		return core.Loan{}, err
	}

	now := s.clock()
	command := core.BuildLendBookCommand(s.loans.NextID(), memberID, isbn, now)
	decision := core.DecideLending(member, book, active, fines, s.policy, command)

	if decision.IsIdempotent() {
		for _, loan := range active {
			if loan.ISBN == isbn {
				if s.logger != nil {
					s.logger.Debug(logMsgIdempotent, logAttrOperation, "borrow", logAttrLoanID, loan.ID)
				}

				return loan, nil
			}
		}
	}

	if ruleErr := decision.HasError(); ruleErr != nil {
		if recordErr := s.record(ctx, decision.Event); recordErr != nil {
			return core.Loan{}, errors.Join(ruleErr, recordErr)
		}

		return core.Loan{}, ruleErr
	}

	lent, ok := decision.Event.(core.BookLentToMember)
	if !ok {
		return core.Loan{}, errors.New("lending decision produced an unexpected event")
	}

	loan := core.Loan{
		ID:       lent.LoanID,
		MemberID: memberID,
		ISBN:     isbn,
		LoanDate: core.Day(now),
		DueDate:  core.Day(lent.DueDate),
		Status:   core.LoanStatusLoaned,
	}

	var undo undoLog

	if err = s.books.UpdateAvailability(isbn, -1); err != nil {
		return core.Loan{}, err
	}
	undo.push(func() { _ = s.books.UpdateAvailability(isbn, +1) })

	if err = s.members.AdjustLoanCount(memberID, +1); err != nil {
		undo.rollback()
		return core.Loan{}, err
	}
	undo.push(func() { _ = s.members.AdjustLoanCount(memberID, -1) })

	if err = s.books.IncrementLoanCount(isbn); err != nil {
		undo.rollback()
		return core.Loan{}, err
	}
	undo.push(func() { _ = s.books.DecrementLoanCount(isbn) })

	if err = s.loans.Add(loan); err != nil {
		undo.rollback()
		return core.Loan{}, err
	}

	return loan, s.record(ctx, lent)
}

// Return takes a copy back. Days past the due date are fined; such a loan stays
// overdue until the fine is paid, any other loan is closed as returned.
func (s *LoanService) Return(ctx context.Context, loanID string) (core.Loan, error) {
	start := time.Now()

	loan, err := s.returnLoan(ctx, loanID)
	s.observe("return", start, err, logAttrLoanID, loanID, logAttrFine, loan.Fine)

	return loan, err
}

func (s *LoanService) returnLoan(ctx context.Context, loanID string) (core.Loan, error) {
	loan, err := s.loans.FindByID(loanID)
	if err != nil {
		return core.Loan{}, err
	}

	if !loan.IsOut() {
		return core.Loan{}, core.ErrLoanNotActive
	}

	today := s.today()

	var undo undoLog

	if err = s.books.UpdateAvailability(loan.ISBN, +1); err != nil {
		return core.Loan{}, err
	}
	undo.push(func() { _ = s.books.UpdateAvailability(loan.ISBN, -1) })

	if err = s.members.AdjustLoanCount(loan.MemberID, -1); err != nil {
		undo.rollback()
		return core.Loan{}, err
	}
	undo.push(func() { _ = s.members.AdjustLoanCount(loan.MemberID, +1) })

	err = s.loans.Modify(loanID, func(l *core.Loan) {
		l.ReturnDate = today
		l.OverdueDays = s.policy.OverdueDays(l.DueDate, today)
		l.Fine = roundCents(s.policy.FineFor(l.DueDate, today))
		l.Status = core.LoanStatusReturned
		if l.Fine > 0 {
			l.Status = core.LoanStatusOverdue
		}
		loan = *l
	})
	if err != nil {
		undo.rollback()
		return core.Loan{}, err
	}

	return loan, s.record(ctx, core.BuildBookReturnedByMember(loan.ID, loan.MemberID, loan.ISBN, loan.Fine, s.clock()))
}

// Renew extends a loan by another loan period from its current due date.
func (s *LoanService) Renew(ctx context.Context, loanID string) (core.Loan, error) {
	start := time.Now()

	loan, err := s.renew(ctx, loanID)
	s.observe("renew", start, err, logAttrLoanID, loanID, logAttrDueDate, core.FormatDate(loan.DueDate))

	return loan, err
}

func (s *LoanService) renew(ctx context.Context, loanID string) (core.Loan, error) {
	loan, err := s.loans.FindByID(loanID)
	if err != nil {
		return core.Loan{}, err
	}

	if err = s.checkRenewable(loan); err != nil {
		return core.Loan{}, err
	}

	member, err := s.members.FindByID(loan.MemberID)
	if err != nil {
		return core.Loan{}, err
	}

	err = s.loans.Modify(loanID, func(l *core.Loan) {
		l.DueDate = s.policy.DueDate(l.DueDate, member.Type)
		loan = *l
	})
	if err != nil {
		return core.Loan{}, err
	}

	return loan, s.record(ctx, core.BuildLoanRenewed(loan.ID, loan.MemberID, loan.DueDate, s.clock()))
}

func (s *LoanService) checkRenewable(loan core.Loan) error {
	if !loan.IsOut() {
		return core.ErrLoanNotActive
	}

	if !s.policy.RenewalAllowed ||
		loan.Status != core.LoanStatusLoaned ||
		loan.OverdueDays > 0 ||
		s.today().After(loan.DueDate) {

		return core.ErrLoanNotRenewable
	}

	return nil
}

// MarkAsLost closes a loan whose copy will not come back and fines the book's price.
// The title loses the copy; a title without copies left is discontinued.
func (s *LoanService) MarkAsLost(ctx context.Context, loanID string) (core.Loan, error) {
	start := time.Now()

	loan, err := s.markAsLost(ctx, loanID)
	s.observe("mark_lost", start, err, logAttrLoanID, loanID, logAttrFine, loan.Fine)

	return loan, err
}

func (s *LoanService) markAsLost(ctx context.Context, loanID string) (core.Loan, error) {
	loan, err := s.loans.FindByID(loanID)
	if err != nil {
		return core.Loan{}, err
	}

	if !loan.IsOut() {
		return core.Loan{}, core.ErrLoanNotActive
	}

	book, err := s.books.FindByISBN(loan.ISBN)
	if err != nil {
		return core.Loan{}, err
	}

	reduced := book
	if reduced.TotalCopies > 1 {
		reduced.TotalCopies--
	} else {
		reduced.Status = core.BookStatusDiscontinued
	}
	reduced.AvailableCopies = min(reduced.AvailableCopies, reduced.TotalCopies)

	var undo undoLog

	if err = s.books.Update(reduced); err != nil {
		return core.Loan{}, err
	}
	undo.push(func() { _ = s.books.Update(book) })

	if err = s.members.AdjustLoanCount(loan.MemberID, -1); err != nil {
		undo.rollback()
		return core.Loan{}, err
	}
	undo.push(func() { _ = s.members.AdjustLoanCount(loan.MemberID, +1) })

	today := s.today()
	err = s.loans.Modify(loanID, func(l *core.Loan) {
		l.ReturnDate = today
		l.OverdueDays = s.policy.OverdueDays(l.DueDate, today)
		l.Fine = roundCents(book.Price)
		l.Status = core.LoanStatusReturned
		if l.Fine > 0 {
			l.Status = core.LoanStatusOverdue
		}
		loan = *l
	})
	if err != nil {
		undo.rollback()
		return core.Loan{}, err
	}

	return loan, s.record(ctx, core.BuildLoanMarkedLost(loan.ID, loan.MemberID, loan.ISBN, loan.Fine, s.clock()))
}

// PayFine pays amount towards the fine of a closed loan. Paying more than is due settles the fine.
// A loan whose fine is settled is returned.
func (s *LoanService) PayFine(ctx context.Context, loanID string, amount float64) (core.Loan, error) {
	start := time.Now()

	loan, err := s.payFine(ctx, loanID, amount)
	s.observe("pay_fine", start, err, logAttrLoanID, loanID, logAttrFine, loan.Fine)

	return loan, err
}

func (s *LoanService) payFine(ctx context.Context, loanID string, amount float64) (core.Loan, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return core.Loan{}, core.ErrInvalidPayment
	}

	loan, err := s.loans.FindByID(loanID)
	if err != nil {
		return core.Loan{}, err
	}

	if loan.IsOut() {
		return core.Loan{}, ErrFineNotFinal
	}

	if !loan.HasFineDue() {
		return core.Loan{}, core.ErrNoFineDue
	}

	paid := roundCents(min(amount, loan.Fine))

	err = s.loans.Modify(loanID, func(l *core.Loan) {
		l.Fine = roundCents(l.Fine - paid)
		if l.Fine <= 0 {
			l.Fine = 0
			l.Status = core.LoanStatusReturned
		}
		loan = *l
	})
	if err != nil {
		return core.Loan{}, err
	}

	return loan, s.record(ctx, core.BuildFinePaid(loan.ID, loan.MemberID, paid, loan.Fine, s.clock()))
}

// OverdueLoans returns the copies still out after their due date, longest overdue first.
func (s *LoanService) OverdueLoans() (*container.Container[core.Loan], error) {
	today := s.today()

	active, err := s.loans.Active()
	if err != nil {
		return nil, err
	}

	overdue, err := active.Filter(func(l *core.Loan) bool {
		return s.policy.OverdueDays(l.DueDate, today) > 0
	})
	if err != nil {
		return nil, err
	}

	if err = overdue.SortWith(core.CompareLoanDueDate); err != nil {
		return nil, err
	}

	return overdue, nil
}

// CalculateOverdueFines flags every copy still out past its due date as overdue,
// with the fine accrued as of today. It returns how many loans it flagged.
func (s *LoanService) CalculateOverdueFines() (int, error) {
	overdue, err := s.OverdueLoans()
	if err != nil {
		return 0, err
	}

	today := s.today()
	flagged := 0
	for loan := range overdue.All() {
		days := s.policy.OverdueDays(loan.DueDate, today)
		fine := roundCents(s.policy.FineFor(loan.DueDate, today))

		if err = s.loans.MarkOverdue(loan.ID, days, fine); err != nil {
			return flagged, err
		}
		flagged++
	}

	return flagged, nil
}

// OverdueNotices builds and logs one notice per copy still out past its due date.
func (s *LoanService) OverdueNotices() ([]OverdueNotice, error) {
	overdue, err := s.OverdueLoans()
	if err != nil {
		return nil, err
	}

	today := s.today()
	notices := make([]OverdueNotice, 0, overdue.Len())
	for loan := range overdue.All() {
		notice := OverdueNotice{
			LoanID:      loan.ID,
			MemberID:    loan.MemberID,
			ISBN:        loan.ISBN,
			DueDate:     loan.DueDate,
			OverdueDays: s.policy.OverdueDays(loan.DueDate, today),
			Fine:        roundCents(s.policy.FineFor(loan.DueDate, today)),
		}

		if member, findErr := s.members.FindByID(loan.MemberID); findErr == nil {
			notice.MemberName = member.Name
			notice.Email = member.Email
		}

		if book, findErr := s.books.FindByISBN(loan.ISBN); findErr == nil {
			notice.Title = book.Title
		}

		if s.logger != nil {
			s.logger.Warn(logMsgOverdueNotice,
				logAttrLoanID, notice.LoanID,
				logAttrMemberID, notice.MemberID,
				logAttrISBN, notice.ISBN,
				logAttrDueDate, core.FormatDate(notice.DueDate),
				logAttrFine, notice.Fine,
			)
		}

		notices = append(notices, notice)
	}

	return notices, nil
}

// CanBorrow reports whether lending the book to the member would succeed now.
// When it would not, the error names the rule in the way.
func (s *LoanService) CanBorrow(memberID, isbn string) (bool, error) {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		return false, err
	}

	book, err := s.books.FindByISBN(isbn)
	if err != nil {
		return false, err
	}

	active, err := activeLoansOf(s.loans, memberID)
	if err != nil {
		return false, err
	}

	fines, err := outstandingFinesOf(s.loans, memberID)
	if err != nil {
		return false, err
	}

	decision := core.DecideLending(member, book, active, fines, s.policy,
		core.BuildLendBookCommand("", memberID, isbn, s.clock()))

	if decision.IsIdempotent() {
		return false, ErrAlreadyHolding
	}

	if ruleErr := decision.HasError(); ruleErr != nil {
		return false, ruleErr
	}

	return true, nil
}

// CanRenew reports whether Renew would succeed now. When it would not, the error says why.
func (s *LoanService) CanRenew(loanID string) (bool, error) {
	loan, err := s.loans.FindByID(loanID)
	if err != nil {
		return false, err
	}

	if err = s.checkRenewable(loan); err != nil {
		return false, err
	}

	return true, nil
}

// LoanPeriod returns the member's loan period in days.
func (s *LoanService) LoanPeriod(memberID string) (int, error) {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		return 0, err
	}

	return s.policy.LoanDays(member.Type), nil
}

// DueDate returns the due date of a loan to the member starting today.
func (s *LoanService) DueDate(memberID string) (time.Time, error) {
	member, err := s.members.FindByID(memberID)
	if err != nil {
		return time.Time{}, err
	}

	return s.policy.DueDate(s.today(), member.Type), nil
}

// FineFor returns what the loan costs the member as of today:
// the fine accrued so far while the copy is out, the unpaid fine afterwards.
func (s *LoanService) FineFor(loanID string) (float64, error) {
	loan, err := s.loans.FindByID(loanID)
	if err != nil {
		return 0, err
	}

	if loan.IsOut() {
		return roundCents(s.policy.FineFor(loan.DueDate, s.today())), nil
	}

	return loan.Fine, nil
}

// BooksLentTo reads the books currently lent to the member from the journal.
func (s *LoanService) BooksLentTo(ctx context.Context, memberID string) (bookslentbymember.BooksCurrentlyLent, error) {
	if s.journal == nil {
		return bookslentbymember.BooksCurrentlyLent{}, ErrNoJournal
	}

	return bookslentbymember.NewQueryHandler(s.journal).Handle(ctx, bookslentbymember.BuildQuery(memberID))
}

func (s *LoanService) FindByID(loanID string) (core.Loan, error) {
	return s.loans.FindByID(loanID)
}

// MemberLoans returns the copies the member holds right now.
func (s *LoanService) MemberLoans(memberID string) (*container.Container[core.Loan], error) {
	loans, err := s.loans.FindByMember(memberID)
	if err != nil {
		return nil, err
	}

	return loans.Filter(func(l *core.Loan) bool { return l.IsOut() })
}

// BookLoans returns every loan of the title, past and present.
func (s *LoanService) BookLoans(isbn string) (*container.Container[core.Loan], error) {
	return s.loans.FindByBook(isbn)
}

// LoanHistory returns every loan of the member, oldest first.
func (s *LoanService) LoanHistory(memberID string) (*container.Container[core.Loan], error) {
	return s.loans.FindByMember(memberID)
}

func (s *LoanService) Active() (*container.Container[core.Loan], error) {
	return s.loans.Active()
}

func (s *LoanService) All() (*container.Container[core.Loan], error) {
	return s.loans.All()
}

func (s *LoanService) ByDateRange(from, until time.Time) (*container.Container[core.Loan], error) {
	return s.loans.ByDateRange(from, until)
}

func (s *LoanService) TotalCount() int {
	return s.loans.Count()
}

func (s *LoanService) ActiveCount() int {
	return s.loans.ActiveCount()
}

func (s *LoanService) OverdueCount() int {
	return s.loans.OverdueCount()
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// undoLog collects compensating steps for a multi-repository change.
type undoLog []func()

func (u *undoLog) push(step func()) {
	*u = append(*u, step)
}

// rollback runs the steps in reverse order.
func (u undoLog) rollback() {
	for i := len(u) - 1; i >= 0; i-- {
		u[i]()
	}
}
