// Package eventstore defines the journal abstractions shared by the catalog:
// filters, storable events, observability interfaces and common errors.
//
// Events are selected by:
//   - event types
//   - JSON payload predicates
//   - a time range (occurred from/until, both inclusive)
//
// Common usage pattern:
//
//	filter := BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.BookLentToMemberEventType,
//			core.BookReturnedByMemberEventType).
//		AndAnyPredicateOf(P("MemberID", memberID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	err = store.Append(ctx, filter, maxSeq, newEvent)
package eventstore
