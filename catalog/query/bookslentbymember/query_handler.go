package bookslentbymember

import (
	"context"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/eventstore"
)

// Journal is the history source the QueryHandler reads from.
type Journal interface {
	History(ctx context.Context, filter eventstore.Filter) (core.DomainEvents, error)
}

// QueryHandler runs the Query -> Project workflow.
type QueryHandler struct {
	journal Journal
}

func NewQueryHandler(journal Journal) QueryHandler {
	return QueryHandler{journal: journal}
}

// Handle reads the relevant history and projects it.
func (h QueryHandler) Handle(ctx context.Context, query Query) (BooksCurrentlyLent, error) {
	history, err := h.journal.History(ctx, BuildEventFilter(query))
	if err != nil {
		return BooksCurrentlyLent{}, err
	}

	return ProjectBooksCurrentlyLent(history, query), nil
}
