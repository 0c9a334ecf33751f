package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/AntonStoeckl/library-catalog-go/catalog/repository"
	"github.com/AntonStoeckl/library-catalog-go/catalog/sample"
	"github.com/AntonStoeckl/library-catalog-go/catalog/service"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
	"github.com/AntonStoeckl/library-catalog-go/eventstore/memengine"
)

// library holds one fully wired catalog.
type library struct {
	cfg      config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	store    *memengine.EventStore
	journal  *shell.Journal

	books   *service.BookService
	members *service.MemberService
	loans   *service.LoanService
}

func newLibrary(cfg config.Config, logger zerolog.Logger, clock service.Clock) (*library, error) {
	registry := prometheus.NewRegistry()
	collector := shell.NewPrometheusCollector(registry)
	logAdapter := shell.NewZerologAdapter(logger)

	store, err := memengine.NewEventStore(
		memengine.WithLogger(logAdapter),
		memengine.WithMetrics(collector),
	)
	if err != nil {
		return nil, err
	}

	journal, err := shell.NewJournal(store,
		shell.WithJournalLogger(logAdapter),
		shell.WithJournalMetrics(collector),
		shell.WithJournalRetry(
			shell.WithMaxAttempts(cfg.Retry.MaxAttempts),
			shell.WithBaseDelay(cfg.Retry.BaseDelay()),
		),
	)
	if err != nil {
		return nil, err
	}

	options := []service.Option{
		service.WithClock(clock),
		service.WithLogger(logAdapter),
		service.WithJournal(journal),
		service.WithMetrics(collector),
		service.WithLoanPolicy(cfg.LoanPolicy()),
	}

	bookRepo := repository.NewBookRepository()
	memberRepo := repository.NewMemberRepository()
	loanRepo := repository.NewLoanRepository()

	l := &library{cfg: cfg, logger: logger, registry: registry, store: store, journal: journal}

	if l.books, err = service.NewBookService(bookRepo, loanRepo, options...); err != nil {
		return nil, err
	}

	if l.members, err = service.NewMemberService(memberRepo, loanRepo, options...); err != nil {
		return nil, err
	}

	if l.loans, err = service.NewLoanService(bookRepo, memberRepo, loanRepo, options...); err != nil {
		return nil, err
	}

	return l, nil
}

// seed registers the sample books and members.
func (l *library) seed(ctx context.Context) error {
	for _, book := range sample.Books() {
		if err := l.books.Register(ctx, book); err != nil {
			return fmt.Errorf("failed to register book %s: %w", book.ISBN, err)
		}
	}

	for _, member := range sample.Members() {
		if err := l.members.Register(ctx, member); err != nil {
			return fmt.Errorf("failed to register member %s: %w", member.ID, err)
		}
	}

	l.logger.Info().
		Int("books", l.books.TotalCount()).
		Int("members", l.members.TotalCount()).
		Int("events", l.store.Len()).
		Msg("sample catalog seeded")

	return nil
}

// simulatedClock lets the demo move through several weeks of lending in one run.
type simulatedClock struct {
	now time.Time
}

func (c *simulatedClock) Now() time.Time {
	return c.now
}

func (c *simulatedClock) advanceDays(days int) {
	c.now = c.now.AddDate(0, 0, days)
}
