// Package sample holds the demo catalog: a handful of well-known books and members.
package sample

import (
	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

const (
	CleanCodeISBN       = "9780132350884"
	EffectiveCppISBN    = "9780134685991"
	DesignPatternsISBN  = "9780201633610"
	RefactoringISBN     = "9780134757599"
	LearningGoISBN      = "9781098100131"
	HeadFirstISBN       = "9780596007126"
	AlgorithmsISBN      = "9780262033848"
	CProgrammingISBN    = "9780131103627"
	JohnSmithID         = "M001"
	JaneDoeID           = "M002"
	AdaLovelaceID       = "M003"
	CategoryProgramming = "Programming"
	CategoryCS          = "Computer Science"
)

// Books returns the sample catalog with every copy on the shelf.
func Books() []core.Book {
	return []core.Book{
		sampleBook(CleanCodeISBN, "Clean Code", "Robert C. Martin", "Prentice Hall", 2008, CategoryProgramming, 3, 49.99),
		sampleBook(EffectiveCppISBN, "Effective C++", "Scott Meyers", "Addison-Wesley", 2005, CategoryProgramming, 2, 54.99),
		sampleBook(DesignPatternsISBN, "Design Patterns", "Erich Gamma", "Addison-Wesley", 1994, CategoryProgramming, 2, 59.99),
		sampleBook(RefactoringISBN, "Refactoring", "Martin Fowler", "Addison-Wesley", 2018, CategoryProgramming, 1, 47.99),
		sampleBook(LearningGoISBN, "Learning Go", "Jon Bodner", "O'Reilly", 2021, CategoryProgramming, 2, 44.99),
		sampleBook(HeadFirstISBN, "Head First Design Patterns", "Eric Freeman", "O'Reilly", 2004, "Design", 1, 39.99),
		sampleBook(AlgorithmsISBN, "Introduction to Algorithms", "Thomas H. Cormen", "MIT Press", 2009, CategoryCS, 2, 89.99),
		sampleBook(CProgrammingISBN, "The C Programming Language", "Brian W. Kernighan", "Prentice Hall", 1988, CategoryCS, 1, 39.99),
	}
}

// Members returns two regular members and one premium member, all active.
func Members() []core.Member {
	return []core.Member{
		sampleMember(JohnSmithID, "John Smith", "555-0123", "john.smith@email.com", "123 Main St, City, State", "2024-01-01", core.MembershipRegular),
		sampleMember(JaneDoeID, "Jane Doe", "555-0456", "jane.doe@email.com", "456 Oak Ave, City, State", "2024-01-15", core.MembershipPremium),
		sampleMember(AdaLovelaceID, "Ada Lovelace", "555-0789", "ada.lovelace@email.com", "12 St James Sq, London", "2024-02-01", core.MembershipRegular),
	}
}

// Book returns the sample book with isbn. It panics for unknown ISBNs.
func Book(isbn string) core.Book {
	for _, book := range Books() {
		if book.ISBN == isbn {
			return book
		}
	}

	panic("no sample book with isbn " + isbn)
}

// Member returns the sample member with id. It panics for unknown IDs.
func Member(id string) core.Member {
	for _, member := range Members() {
		if member.ID == id {
			return member
		}
	}

	panic("no sample member with id " + id)
}

func sampleBook(isbn, title, author, publisher string, year int, category string, copies int, price float64) core.Book {
	return core.Book{
		ISBN:            isbn,
		Title:           title,
		Author:          author,
		Publisher:       publisher,
		Year:            year,
		Category:        category,
		TotalCopies:     copies,
		AvailableCopies: copies,
		Price:           price,
		Status:          core.BookStatusActive,
	}
}

func sampleMember(id, name, phone, email, address, joined string, membership core.MembershipType) core.Member {
	return core.Member{
		ID:       id,
		Name:     name,
		Phone:    phone,
		Email:    email,
		Address:  address,
		JoinDate: core.MustParseDate(joined),
		Type:     membership,
		Status:   core.MemberStatusActive,
	}
}
