package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/sample"
)

// demoStart is the first day of the simulated lending period.
var demoStart = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var withMetrics bool

	c := &cobra.Command{
		Use:   "demo",
		Short: "Seed the sample catalog, run a few weeks of lending and print reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			clock := &simulatedClock{now: demoStart}
			lib, err := newLibrary(cfg, logger, clock.Now)
			if err != nil {
				return err
			}

			return runDemo(cmd.Context(), cmd.OutOrStdout(), lib, clock, withMetrics)
		},
	}
	c.Flags().BoolVar(&withMetrics, "metrics", true, "print the collected prometheus metrics at the end")

	return c
}

func runDemo(ctx context.Context, out io.Writer, lib *library, clock *simulatedClock, withMetrics bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := lib.seed(ctx); err != nil {
		return err
	}

	section(out, "Catalog")
	if err := renderBooks(out, lib, core.CompareBookISBN); err != nil {
		return err
	}

	section(out, "Day 1: lending")
	var johnsLoan, adasLoan, janesLoan core.Loan
	for _, request := range []struct {
		memberID string
		isbn     string
		loan     *core.Loan
	}{
		{sample.JohnSmithID, sample.CleanCodeISBN, &johnsLoan},
		{sample.JaneDoeID, sample.LearningGoISBN, &janesLoan},
		{sample.JaneDoeID, sample.DesignPatternsISBN, nil},
		{sample.AdaLovelaceID, sample.RefactoringISBN, &adasLoan},
		{sample.JohnSmithID, sample.RefactoringISBN, nil},
	} {
		loan, err := lib.loans.Borrow(ctx, request.memberID, request.isbn)
		if err != nil {
			fmt.Fprintf(out, "%s cannot borrow %s: %v\n", request.memberID, request.isbn, err)
			continue
		}

		fmt.Fprintf(out, "%s borrowed %s as %s, due %s\n",
			request.memberID, request.isbn, loan.ID, core.FormatDate(loan.DueDate))
		if request.loan != nil {
			*request.loan = loan
		}
	}

	clock.advanceDays(10)
	section(out, "Day 11: renewal")
	if renewed, err := lib.loans.Renew(ctx, janesLoan.ID); err != nil {
		fmt.Fprintf(out, "%s cannot be renewed: %v\n", janesLoan.ID, err)
	} else {
		fmt.Fprintf(out, "%s renewed, now due %s\n", renewed.ID, core.FormatDate(renewed.DueDate))
	}

	clock.advanceDays(8)
	section(out, "Day 19: overdue notices")
	notices, err := lib.loans.OverdueNotices()
	if err != nil {
		return err
	}

	for _, notice := range notices {
		fmt.Fprintf(out, "to %s <%s>: %q was due %s, %d days late, fine so far %.2f\n",
			notice.MemberName, notice.Email, notice.Title, core.FormatDate(notice.DueDate), notice.OverdueDays, notice.Fine)
	}

	flagged, err := lib.loans.CalculateOverdueFines()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d loans flagged overdue\n", flagged)

	section(out, "Day 19: returns and losses")
	if returned, returnErr := lib.loans.Return(ctx, johnsLoan.ID); returnErr == nil {
		fmt.Fprintf(out, "%s returned, fine %.2f\n", returned.ID, returned.Fine)

		if paid, payErr := lib.loans.PayFine(ctx, returned.ID, returned.Fine); payErr == nil {
			fmt.Fprintf(out, "%s fine paid, %.2f left\n", paid.ID, paid.Fine)
		}
	}

	if lost, lostErr := lib.loans.MarkAsLost(ctx, adasLoan.ID); lostErr == nil {
		fmt.Fprintf(out, "%s marked lost, fine %.2f\n", lost.ID, lost.Fine)
	}

	if _, err = lib.loans.Borrow(ctx, sample.AdaLovelaceID, sample.AlgorithmsISBN); err != nil {
		fmt.Fprintf(out, "%s cannot borrow %s: %v\n", sample.AdaLovelaceID, sample.AlgorithmsISBN, err)
	}

	section(out, "Loans")
	loans, err := lib.loans.All()
	if err != nil {
		return err
	}
	if err = loans.Render(out); err != nil {
		return err
	}

	section(out, "Popular books")
	popular, err := lib.books.PopularBooks(lib.cfg.Catalog.PopularBooksLimit)
	if err != nil {
		return err
	}
	if err = popular.Render(out); err != nil {
		return err
	}

	section(out, fmt.Sprintf("New arrivals (last %d days)", lib.cfg.Catalog.NewArrivalsDays))
	arrivals, err := lib.books.NewArrivals(ctx, lib.cfg.Catalog.NewArrivalsDays)
	if err != nil {
		return err
	}
	if err = arrivals.Render(out); err != nil {
		return err
	}

	section(out, "Recommendations for "+sample.JohnSmithID)
	recommendations, err := lib.books.Recommendations(sample.JohnSmithID, lib.cfg.Catalog.RecommendationsLimit)
	if err != nil {
		return err
	}
	if err = recommendations.Render(out); err != nil {
		return err
	}

	section(out, "Books lent to "+sample.JaneDoeID)
	lent, err := lib.loans.BooksLentTo(ctx, sample.JaneDoeID)
	if err != nil {
		return err
	}
	for _, book := range lent.Books {
		fmt.Fprintf(out, "%s %q by %s, due %s\n", book.LoanID, book.Title, book.Author, core.FormatDate(book.DueAt))
	}

	section(out, "Members")
	members, err := lib.members.All()
	if err != nil {
		return err
	}
	if err = members.Render(out); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d books, %d available, %d members, %d loans (%d active, %d overdue), %d journal events\n",
		lib.books.TotalCount(), lib.books.AvailableBookCount(),
		lib.members.TotalCount(),
		lib.loans.TotalCount(), lib.loans.ActiveCount(), lib.loans.OverdueCount(),
		lib.store.Len())

	if !withMetrics {
		return nil
	}

	section(out, "Metrics")
	families, err := lib.registry.Gather()
	if err != nil {
		return err
	}

	for _, family := range families {
		if _, err = expfmt.MetricFamilyToText(out, family); err != nil {
			return err
		}
	}

	return nil
}

func section(out io.Writer, title string) {
	fmt.Fprintf(out, "\n== %s ==\n", title)
}
