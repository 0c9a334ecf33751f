package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/repository"
	"github.com/AntonStoeckl/library-catalog-go/catalog/sample"
	"github.com/AntonStoeckl/library-catalog-go/catalog/service"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/eventstore"
	"github.com/AntonStoeckl/library-catalog-go/eventstore/memengine"
	"github.com/AntonStoeckl/library-catalog-go/testutil/helper"
)

var startOfTest = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) advanceDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}

type library struct {
	clock      *testClock
	logHandler *helper.TestLogHandler
	metrics    *helper.MetricsCollectorSpy
	journal    *shell.Journal

	bookRepo   *repository.BookRepository
	memberRepo *repository.MemberRepository
	loanRepo   *repository.LoanRepository

	books   *service.BookService
	members *service.MemberService
	loans   *service.LoanService
}

// newLibrary wires empty repositories, a journal and all services around a fixed clock.
func newLibrary(t *testing.T, extra ...service.Option) *library {
	t.Helper()

	store, err := memengine.NewEventStore()
	require.NoError(t, err)

	journal, err := shell.NewJournal(store)
	require.NoError(t, err)

	l := &library{
		clock:      &testClock{now: startOfTest},
		logHandler: helper.NewTestLogHandler(false),
		metrics:    helper.NewMetricsCollectorSpy(true),
		journal:    journal,
		bookRepo:   repository.NewBookRepository(),
		memberRepo: repository.NewMemberRepository(),
		loanRepo:   repository.NewLoanRepository(),
	}

	options := append([]service.Option{
		service.WithClock(l.clock.Now),
		service.WithLogger(l.logHandler.Logger()),
		service.WithJournal(journal),
		service.WithMetrics(l.metrics),
	}, extra...)

	l.books, err = service.NewBookService(l.bookRepo, l.loanRepo, options...)
	require.NoError(t, err)

	l.members, err = service.NewMemberService(l.memberRepo, l.loanRepo, options...)
	require.NoError(t, err)

	l.loans, err = service.NewLoanService(l.bookRepo, l.memberRepo, l.loanRepo, options...)
	require.NoError(t, err)

	return l
}

// newSeededLibrary is newLibrary with the sample books and members registered.
func newSeededLibrary(t *testing.T, extra ...service.Option) *library {
	t.Helper()

	l := newLibrary(t, extra...)
	ctx := context.Background()

	for _, book := range sample.Books() {
		require.NoError(t, l.books.Register(ctx, book))
	}

	for _, member := range sample.Members() {
		require.NoError(t, l.members.Register(ctx, member))
	}

	return l
}

func (l *library) borrow(t *testing.T, memberID, isbn string) core.Loan {
	t.Helper()

	loan, err := l.loans.Borrow(context.Background(), memberID, isbn)
	require.NoError(t, err)

	return loan
}

func (l *library) history(t *testing.T, eventType string) core.DomainEvents {
	t.Helper()

	events, err := l.journal.History(
		context.Background(),
		eventstore.BuildEventFilter().Matching().AnyEventTypeOf(eventType).Finalize(),
	)
	require.NoError(t, err)

	return events
}

func (l *library) book(t *testing.T, isbn string) core.Book {
	t.Helper()

	book, err := l.books.FindByISBN(isbn)
	require.NoError(t, err)

	return book
}

func (l *library) member(t *testing.T, id string) core.Member {
	t.Helper()

	member, err := l.members.FindByID(id)
	require.NoError(t, err)

	return member
}
