package bookslentbymember

import (
	"cmp"
	"maps"
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// ProjectBooksCurrentlyLent replays history into the books the queried member holds.
//
//	GIVEN: A member with MemberID
//	WHEN: BooksLentByMember query is executed
//	THEN: the books lent and neither returned nor lost are listed, oldest loan first
//	INCLUDES: Title and author when the book's catalog addition is in the history
func ProjectBooksCurrentlyLent(history core.DomainEvents, query Query) BooksCurrentlyLent {
	catalog := make(map[string]core.BookAddedToCatalog)
	lent := make(map[string]BookInfo)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			catalog[e.ISBN] = e

		case core.BookLentToMember:
			if e.MemberID != query.MemberID {
				continue
			}

			info := BookInfo{
				LoanID: e.LoanID,
				ISBN:   e.ISBN,
				LentAt: e.OccurredAt,
				DueAt:  e.DueDate,
			}
			if book, ok := catalog[e.ISBN]; ok {
				info.Title = book.Title
				info.Author = book.Author
			}
			lent[e.LoanID] = info

		case core.BookReturnedByMember:
			if e.MemberID == query.MemberID {
				delete(lent, e.LoanID)
			}

		case core.LoanMarkedLost:
			if e.MemberID == query.MemberID {
				delete(lent, e.LoanID)
			}

		case core.LoanRenewed:
			if info, ok := lent[e.LoanID]; ok {
				info.DueAt = e.DueDate
				lent[e.LoanID] = info
			}
		}
	}

	books := slices.Collect(maps.Values(lent))
	slices.SortFunc(books, func(a, b BookInfo) int {
		if c := a.LentAt.Compare(b.LentAt); c != 0 {
			return c
		}
		return cmp.Compare(a.LoanID, b.LoanID)
	})

	return BooksCurrentlyLent{
		MemberID: query.MemberID,
		Books:    books,
		Count:    len(books),
	}
}
