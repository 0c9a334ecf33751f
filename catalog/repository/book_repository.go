package repository

import (
	"errors"
	"strings"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/container"
)

// BookRepository stores the catalog ordered by ISBN.
type BookRepository struct {
	books *container.Container[core.Book]
}

func NewBookRepository() *BookRepository {
	return &BookRepository{
		books: container.New(
			container.WithComparator(core.CompareBookISBN),
			container.WithPrinter(core.FormatBook),
		),
	}
}

// Add validates book and inserts it at its ISBN position.
func (r *BookRepository) Add(book core.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	if r.books.Contains(book) {
		return core.ErrDuplicateISBN
	}

	return r.books.InsertSorted(book)
}

func (r *BookRepository) FindByISBN(isbn string) (core.Book, error) {
	node := r.books.Search(core.Book{ISBN: isbn})
	if node == nil {
		return core.Book{}, core.ErrBookNotFound
	}

	return *node.Record(), nil
}

// FindByTitle returns the books whose title contains title, ignoring case.
func (r *BookRepository) FindByTitle(title string) (*container.Container[core.Book], error) {
	return r.Search(core.BookSearchCriteria{Title: title})
}

// FindByAuthor returns the books whose author contains author, ignoring case.
func (r *BookRepository) FindByAuthor(author string) (*container.Container[core.Book], error) {
	return r.Search(core.BookSearchCriteria{Author: author})
}

func (r *BookRepository) FindByCategory(category string) (*container.Container[core.Book], error) {
	return r.Search(core.BookSearchCriteria{Category: category})
}

// Search returns the books matching criteria, in ISBN order.
func (r *BookRepository) Search(criteria core.BookSearchCriteria) (*container.Container[core.Book], error) {
	return r.books.Filter(func(b *core.Book) bool {
		return criteria.Matches(*b)
	})
}

// Update replaces the stored book carrying the same ISBN.
func (r *BookRepository) Update(book core.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	node := r.books.Search(book)
	if node == nil {
		return core.ErrBookNotFound
	}

	*node.Record() = book

	return nil
}

func (r *BookRepository) Delete(isbn string) error {
	err := r.books.DeleteByValue(core.Book{ISBN: isbn})
	if errors.Is(err, container.ErrNotFound) {
		return core.ErrBookNotFound
	}

	return err
}

// All returns a copy of the whole catalog.
func (r *BookRepository) All() (*container.Container[core.Book], error) {
	return r.books.Clone()
}

// Available returns the books with at least one copy on the shelf.
func (r *BookRepository) Available() (*container.Container[core.Book], error) {
	return r.Search(core.BookSearchCriteria{OnlyAvailable: true})
}

// UpdateAvailability changes the available copies by delta, keeping them within 0..TotalCopies.
func (r *BookRepository) UpdateAvailability(isbn string, delta int) error {
	node := r.books.Search(core.Book{ISBN: isbn})
	if node == nil {
		return core.ErrBookNotFound
	}

	book := node.Record()
	available := book.AvailableCopies + delta
	if available < 0 || available > book.TotalCopies {
		return errors.Join(core.ErrInvalidInput, core.ErrInvalidCopies)
	}

	book.AvailableCopies = available

	return nil
}

func (r *BookRepository) IncrementLoanCount(isbn string) error {
	node := r.books.Search(core.Book{ISBN: isbn})
	if node == nil {
		return core.ErrBookNotFound
	}

	node.Record().LoanCount++

	return nil
}

// DecrementLoanCount undoes one IncrementLoanCount. It never drops below 0.
func (r *BookRepository) DecrementLoanCount(isbn string) error {
	node := r.books.Search(core.Book{ISBN: isbn})
	if node == nil {
		return core.ErrBookNotFound
	}

	book := node.Record()
	book.LoanCount = max(book.LoanCount-1, 0)

	return nil
}

// Categories returns the distinct categories in first-seen order.
func (r *BookRepository) Categories() []string {
	var categories []string
	for book := range r.books.All() {
		if book.Category != "" && !containsFold(categories, book.Category) {
			categories = append(categories, book.Category)
		}
	}

	return categories
}

func (r *BookRepository) Count() int {
	return r.books.Len()
}

// AvailableCount returns the number of titles with at least one copy on the shelf.
func (r *BookRepository) AvailableCount() int {
	return countWhere(r.books, func(b *core.Book) bool {
		return b.AvailableCopies > 0
	})
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}

	return false
}
