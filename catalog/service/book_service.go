package service

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/query/newarrivals"
	"github.com/AntonStoeckl/library-catalog-go/catalog/repository"
	"github.com/AntonStoeckl/library-catalog-go/container"
)

// ErrInvalidLimit is returned for a non-positive result size or window.
var ErrInvalidLimit = errors.Join(core.ErrInvalidInput, errors.New("limit must be positive"))

// BookService manages the catalog.
type BookService struct {
	settings

	books *repository.BookRepository
	loans *repository.LoanRepository
}

func NewBookService(
	books *repository.BookRepository,
	loans *repository.LoanRepository,
	options ...Option,
) (*BookService, error) {

	if books == nil || loans == nil {
		return nil, ErrNilRepository
	}

	s, err := newSettings(options)
	if err != nil {
		return nil, err
	}

	return &BookService{settings: s, books: books, loans: loans}, nil
}

// Register adds a title with all its copies on the shelf.
func (s *BookService) Register(ctx context.Context, book core.Book) error {
	start := time.Now()

	err := s.register(ctx, book)
	s.observe("register_book", start, err, logAttrISBN, book.ISBN)

	return err
}

func (s *BookService) register(ctx context.Context, book core.Book) error {
	book.AvailableCopies = book.TotalCopies
	book.LoanCount = 0
	if book.Status == "" {
		book.Status = core.BookStatusActive
	}

	if err := s.books.Add(book); err != nil {
		return err
	}

	return s.record(ctx, core.BuildBookAddedToCatalog(
		book.ISBN, book.Title, book.Author, book.Category, book.TotalCopies, s.clock()))
}

// Update replaces the descriptive fields and the copy count of a title.
// Copies that are lent out stay lent out.
func (s *BookService) Update(book core.Book) error {
	existing, err := s.books.FindByISBN(book.ISBN)
	if err != nil {
		return err
	}

	lent := existing.TotalCopies - existing.AvailableCopies
	if book.TotalCopies < lent {
		return errors.Join(core.ErrInvalidInput, core.ErrInvalidCopies)
	}

	book.AvailableCopies = book.TotalCopies - lent
	book.LoanCount = existing.LoanCount
	if book.Status == "" {
		book.Status = existing.Status
	}

	return s.books.Update(book)
}

// Remove takes a title out of the catalog. It fails while any copy is lent.
func (s *BookService) Remove(ctx context.Context, isbn string) error {
	start := time.Now()

	err := s.remove(ctx, isbn)
	s.observe("remove_book", start, err, logAttrISBN, isbn)

	return err
}

func (s *BookService) remove(ctx context.Context, isbn string) error {
	if _, err := s.books.FindByISBN(isbn); err != nil {
		return err
	}

	loans, err := s.loans.FindByBook(isbn)
	if err != nil {
		return err
	}

	if loans.FindIf(func(l *core.Loan) bool { return l.IsOut() }) != nil {
		return core.ErrBookHasActiveLoans
	}

	if err = s.books.Delete(isbn); err != nil {
		return err
	}

	return s.record(ctx, core.BuildBookRemovedFromCatalog(isbn, s.clock()))
}

func (s *BookService) Search(criteria core.BookSearchCriteria) (*container.Container[core.Book], error) {
	return s.books.Search(criteria)
}

func (s *BookService) FindByISBN(isbn string) (core.Book, error) {
	return s.books.FindByISBN(isbn)
}

func (s *BookService) FindByTitle(title string) (*container.Container[core.Book], error) {
	return s.books.FindByTitle(title)
}

func (s *BookService) FindByAuthor(author string) (*container.Container[core.Book], error) {
	return s.books.FindByAuthor(author)
}

func (s *BookService) FindByCategory(category string) (*container.Container[core.Book], error) {
	return s.books.FindByCategory(category)
}

// IsAvailableForLoan reports whether a copy of the title can be lent now.
func (s *BookService) IsAvailableForLoan(isbn string) (bool, error) {
	book, err := s.books.FindByISBN(isbn)
	if err != nil {
		return false, err
	}

	return book.IsAvailable(), nil
}

// AvailableCount returns the copies of one title on the shelf.
func (s *BookService) AvailableCount(isbn string) (int, error) {
	book, err := s.books.FindByISBN(isbn)
	if err != nil {
		return 0, err
	}

	return book.AvailableCopies, nil
}

// Reserve takes one copy off the shelf.
func (s *BookService) Reserve(isbn string) error {
	book, err := s.books.FindByISBN(isbn)
	if err != nil {
		return err
	}

	switch {
	case book.Status == core.BookStatusDiscontinued:
		return core.ErrBookDiscontinued
	case !book.IsAvailable():
		return core.ErrBookUnavailable
	}

	return s.books.UpdateAvailability(isbn, -1)
}

// ReleaseReservation puts one copy back on the shelf.
func (s *BookService) ReleaseReservation(isbn string) error {
	return s.books.UpdateAvailability(isbn, +1)
}

// PopularBooks returns at most limit titles, most lent first.
// Titles lent equally often keep their ISBN order.
func (s *BookService) PopularBooks(limit int) (*container.Container[core.Book], error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	books, err := s.books.All()
	if err != nil {
		return nil, err
	}

	return popular(books, limit)
}

// NewArrivals returns the titles added during the last days and still in the catalog, newest first.
func (s *BookService) NewArrivals(ctx context.Context, days int) (*container.Container[core.Book], error) {
	if days <= 0 {
		return nil, ErrInvalidLimit
	}

	if s.journal == nil {
		return nil, ErrNoJournal
	}

	arrivals, err := newarrivals.NewQueryHandler(s.journal).Handle(ctx, newarrivals.BuildQuery(s.clock(), days))
	if err != nil {
		return nil, err
	}

	books := container.New(container.WithPrinter(core.FormatBook))
	for _, info := range arrivals.Books {
		book, findErr := s.books.FindByISBN(info.ISBN)
		if findErr != nil {
			continue
		}

		if err = books.InsertRear(book); err != nil {
			return nil, err
		}
	}

	return books, nil
}

// Recommendations suggests up to limit available titles from the categories the member
// has borrowed before, leaving out titles the member already borrowed.
// Without any borrowing history it falls back to the most popular available titles.
func (s *BookService) Recommendations(memberID string, limit int) (*container.Container[core.Book], error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	history, err := s.loans.FindByMember(memberID)
	if err != nil {
		return nil, err
	}

	borrowed := make(map[string]struct{}, history.Len())
	categories := make(map[string]struct{})
	for loan := range history.All() {
		borrowed[loan.ISBN] = struct{}{}

		if book, findErr := s.books.FindByISBN(loan.ISBN); findErr == nil && book.Category != "" {
			categories[book.Category] = struct{}{}
		}
	}

	candidates, err := s.books.Search(core.BookSearchCriteria{OnlyAvailable: true})
	if err != nil {
		return nil, err
	}

	candidates, err = candidates.Filter(func(b *core.Book) bool {
		if !b.IsAvailable() {
			return false
		}

		if len(borrowed) == 0 {
			return true
		}

		_, alreadyBorrowed := borrowed[b.ISBN]
		_, sameCategory := categories[b.Category]

		return sameCategory && !alreadyBorrowed
	})
	if err != nil {
		return nil, err
	}

	return popular(candidates, limit)
}

func (s *BookService) All() (*container.Container[core.Book], error) {
	return s.books.All()
}

func (s *BookService) Available() (*container.Container[core.Book], error) {
	return s.books.Available()
}

func (s *BookService) Categories() []string {
	return s.books.Categories()
}

func (s *BookService) TotalCount() int {
	return s.books.Count()
}

// AvailableBookCount returns the number of titles with at least one copy on the shelf.
func (s *BookService) AvailableBookCount() int {
	return s.books.AvailableCount()
}

// popular sorts books by loan count in place and cuts them to limit.
func popular(books *container.Container[core.Book], limit int) (*container.Container[core.Book], error) {
	if err := books.SortWith(core.CompareBookLoanCountDesc); err != nil {
		return nil, err
	}

	for books.Len() > limit {
		if err := books.DeleteRear(); err != nil {
			return nil, err
		}
	}

	return books, nil
}
