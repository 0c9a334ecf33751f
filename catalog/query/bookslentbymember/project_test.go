package bookslentbymember_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/query/bookslentbymember"
	"github.com/AntonStoeckl/library-catalog-go/catalog/sample"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/eventstore/memengine"
)

var day0 = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

func at(days int) time.Time {
	return day0.AddDate(0, 0, days)
}

func givenHistory() core.DomainEvents {
	return core.DomainEvents{
		core.BuildBookAddedToCatalog(sample.CleanCodeISBN, "Clean Code", "Robert C. Martin", sample.CategoryProgramming, 3, at(0)),
		core.BuildBookAddedToCatalog(sample.LearningGoISBN, "Learning Go", "Jon Bodner", sample.CategoryProgramming, 2, at(0)),
		core.BuildBookLentToMember("L000000001", sample.JohnSmithID, sample.LearningGoISBN, at(16), at(2)),
		core.BuildBookLentToMember("L000000002", sample.JohnSmithID, sample.CleanCodeISBN, at(15), at(1)),
		core.BuildBookLentToMember("L000000003", sample.JaneDoeID, sample.CleanCodeISBN, at(22), at(1)),
		core.BuildBookLentToMember("L000000004", sample.JohnSmithID, sample.RefactoringISBN, at(17), at(3)),
		core.BuildLoanRenewed("L000000001", sample.JohnSmithID, at(30), at(10)),
		core.BuildBookReturnedByMember("L000000004", sample.JohnSmithID, sample.RefactoringISBN, 0, at(5)),
	}
}

func Test_ProjectBooksCurrentlyLent(t *testing.T) {
	// act
	result := bookslentbymember.ProjectBooksCurrentlyLent(givenHistory(), bookslentbymember.BuildQuery(sample.JohnSmithID))

	// assert
	assert.Equal(t, sample.JohnSmithID, result.MemberID)
	require.Equal(t, 2, result.Count)
	assert.Equal(t, "Clean Code", result.Books[0].Title)
	assert.Equal(t, "L000000001", result.Books[1].LoanID)
	assert.Equal(t, "Jon Bodner", result.Books[1].Author)
	assert.Equal(t, at(30).UTC().Truncate(time.Microsecond), result.Books[1].DueAt)
}

func Test_ProjectBooksCurrentlyLent_DropsLostCopies(t *testing.T) {
	// arrange
	history := append(givenHistory(),
		core.BuildLoanMarkedLost("L000000002", sample.JohnSmithID, sample.CleanCodeISBN, 49.99, at(20)))

	// act
	result := bookslentbymember.ProjectBooksCurrentlyLent(history, bookslentbymember.BuildQuery(sample.JohnSmithID))

	// assert
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "L000000001", result.Books[0].LoanID)
}

func Test_ProjectBooksCurrentlyLent_EmptyForUnknownMember(t *testing.T) {
	result := bookslentbymember.ProjectBooksCurrentlyLent(givenHistory(), bookslentbymember.BuildQuery("M999"))

	assert.Zero(t, result.Count)
	assert.Empty(t, result.Books)
}

func Test_QueryHandler_ReadsOnlyTheRelevantHistory(t *testing.T) {
	// arrange
	ctx := context.Background()
	store, err := memengine.NewEventStore()
	require.NoError(t, err)
	journal, err := shell.NewJournal(store)
	require.NoError(t, err)
	for _, event := range givenHistory() {
		require.NoError(t, journal.Record(ctx, event))
	}

	query := bookslentbymember.BuildQuery(sample.JaneDoeID)

	// act
	result, err := bookslentbymember.NewQueryHandler(journal).Handle(ctx, query)

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "L000000003", result.Books[0].LoanID)
	assert.Equal(t, "BooksLentByMember", query.QueryType())
}
