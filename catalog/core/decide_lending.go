package core

import (
	"time"
)

// LendBookCommand is the intent to lend one copy of a book to a member.
type LendBookCommand struct {
	LoanID     string
	MemberID   string
	ISBN       string
	OccurredAt OccurredAtTS
}

// BuildLendBookCommand creates a new LendBookCommand.
func BuildLendBookCommand(loanID, memberID, isbn string, occurredAt time.Time) LendBookCommand {
	return LendBookCommand{
		LoanID:     loanID,
		MemberID:   memberID,
		ISBN:       isbn,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// DecideLending decides whether a copy of book may be lent to member.
// It is a pure function: activeLoans are the member's loans that are still out
// and outstandingFines is the sum of the member's unpaid fines.
//
// Business Rules:
//
//	GIVEN: A member and a book from the catalog
//	WHEN: LendBookCommand is received
//	THEN: BookLentToMember event is generated, due after the member's loan period
//	ERROR: "member is not active" if the member is suspended or deactivated
//	ERROR: "member has outstanding fines" if any fine is unpaid
//	ERROR: "loan limit reached" if the member holds as many loans as the membership allows
//	ERROR: "book is discontinued" if the book was withdrawn
//	ERROR: "no copy available" if every copy is lent out
//	IDEMPOTENCY: If the member already holds a copy of this book, no event is generated
func DecideLending(
	member Member,
	book Book,
	activeLoans []Loan,
	outstandingFines float64,
	policy LoanPolicy,
	command LendBookCommand,
) DecisionResult {

	for _, loan := range activeLoans {
		if loan.ISBN == command.ISBN {
			return IdempotentDecision()
		}
	}

	fail := func(info string, err error) DecisionResult {
		return ErrorDecision(
			BuildLendingBookToMemberFailed(command.MemberID, command.ISBN, info, command.OccurredAt),
			err)
	}

	if !member.IsActive() {
		return fail("member is not active", ErrMemberNotActive)
	}

	if outstandingFines > 0 {
		return fail("member has outstanding fines", ErrOutstandingFines)
	}

	if len(activeLoans) >= policy.LoanLimit(member.Type) {
		return fail("loan limit reached", ErrLoanLimitReached)
	}

	if book.Status == BookStatusDiscontinued {
		return fail("book is discontinued", ErrBookDiscontinued)
	}

	if !book.IsAvailable() {
		return fail("no copy available", ErrBookUnavailable)
	}

	return SuccessDecision(
		BuildBookLentToMember(
			command.LoanID,
			command.MemberID,
			command.ISBN,
			policy.DueDate(command.OccurredAt, member.Type),
			command.OccurredAt))
}
