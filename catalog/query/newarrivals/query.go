package newarrivals

import (
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

const (
	queryType = "NewArrivals"
)

// Query represents the intent to list the books added between From and Until.
type Query struct {
	From  time.Time
	Until time.Time
}

// BuildQuery creates a Query covering the days before asOf, asOf included.
func BuildQuery(asOf time.Time, days int) Query {
	return Query{
		From:  core.Day(asOf).AddDate(0, 0, -days),
		Until: asOf,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// BuildEventFilter selects catalog additions and removals within the window.
func BuildEventFilter(q Query) eventstore.Filter {
	return eventstore.BuildEventFilter().
		OccurredFrom(q.From).
		OccurredUntil(q.Until).
		Matching().
		AnyEventTypeOf(core.BookAddedToCatalogEventType, core.BookRemovedFromCatalogEventType).
		Finalize()
}
