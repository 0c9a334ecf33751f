package newarrivals

import (
	"cmp"
	"maps"
	"slices"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

// ProjectNewArrivals replays history into the books added within the query window.
// A book removed after being added drops out; events outside the window are ignored.
func ProjectNewArrivals(history core.DomainEvents, query Query) NewArrivals {
	added := make(map[string]BookInfo)

	for _, event := range history {
		if event.HasOccurredAt().Before(query.From) || event.HasOccurredAt().After(query.Until) {
			continue
		}

		switch e := event.(type) {
		case core.BookAddedToCatalog:
			added[e.ISBN] = BookInfo{
				ISBN:     e.ISBN,
				Title:    e.Title,
				Author:   e.Author,
				Category: e.Category,
				Copies:   e.Copies,
				AddedAt:  e.OccurredAt,
			}

		case core.BookRemovedFromCatalog:
			delete(added, e.ISBN)
		}
	}

	books := slices.Collect(maps.Values(added))
	slices.SortFunc(books, func(a, b BookInfo) int {
		if c := b.AddedAt.Compare(a.AddedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ISBN, b.ISBN)
	})

	return NewArrivals{
		Books: books,
		Count: len(books),
	}
}
