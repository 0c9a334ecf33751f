package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/container"
)

var bookOrders = map[string]container.Comparator[core.Book]{
	"isbn":   core.CompareBookISBN,
	"title":  core.CompareBookTitle,
	"author": core.CompareBookAuthor,
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var sortBy string

	c := &cobra.Command{
		Use:   "report",
		Short: "Seed the sample catalog and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, ok := bookOrders[sortBy]
			if !ok {
				return fmt.Errorf("invalid --sort-by [%s], want title, author or isbn", sortBy)
			}

			cfg, logger, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			lib, err := newLibrary(cfg, logger, time.Now)
			if err != nil {
				return err
			}

			if err = lib.seed(context.Background()); err != nil {
				return err
			}

			return renderBooks(cmd.OutOrStdout(), lib, order)
		},
	}
	c.Flags().StringVar(&sortBy, "sort-by", "title", "order of the catalog [title|author|isbn]")

	return c
}

func renderBooks(out io.Writer, lib *library, order container.Comparator[core.Book]) error {
	books, err := lib.books.All()
	if err != nil {
		return err
	}

	if err = books.SortWith(order); err != nil {
		return err
	}

	return books.Render(out)
}
