package bookslentbymember

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

const (
	queryType = "BooksLentByMember"
)

// Query represents the intent to list the books currently lent to a member.
type Query struct {
	MemberID string
}

// BuildQuery creates a new Query for memberID.
func BuildQuery(memberID string) Query {
	return Query{
		MemberID: memberID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// BuildEventFilter selects the catalog additions and the member's loan events.
func BuildEventFilter(q Query) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookAddedToCatalogEventType).
		OrMatching().
		AnyEventTypeOf(
			core.BookLentToMemberEventType,
			core.BookReturnedByMemberEventType,
			core.LoanRenewedEventType,
			core.LoanMarkedLostEventType,
		).
		AndAnyPredicateOf(eventstore.P("MemberID", q.MemberID)).
		Finalize()
}
