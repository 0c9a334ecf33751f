package service

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/repository"
)

func activeLoansOf(loans *repository.LoanRepository, memberID string) ([]core.Loan, error) {
	memberLoans, err := loans.FindByMember(memberID)
	if err != nil {
		return nil, err
	}

	active, err := memberLoans.Filter(func(l *core.Loan) bool { return l.IsOut() })
	if err != nil {
		return nil, err
	}

	return active.Values(), nil
}

// outstandingFinesOf sums the unpaid fines over all of the member's loans.
func outstandingFinesOf(loans *repository.LoanRepository, memberID string) (float64, error) {
	memberLoans, err := loans.FindByMember(memberID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for loan := range memberLoans.All() {
		total += loan.Fine
	}

	return total, nil
}
