package core

import (
	"errors"
)

// Error kinds surfaced by the catalog. Field-specific validation errors are joined with ErrInvalidInput.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate entry")

	ErrInvalidISBN           = errors.New("isbn must be 13 digits with a valid check digit")
	ErrInvalidTitle          = errors.New("title must have 1 to 100 characters")
	ErrInvalidAuthor         = errors.New("author must have 1 to 50 characters")
	ErrInvalidPublisher      = errors.New("publisher must have at most 50 characters")
	ErrInvalidYear           = errors.New("publication year must be between 1000 and 2030")
	ErrInvalidCategory       = errors.New("category must have at most 30 characters")
	ErrInvalidCopies         = errors.New("copies must be positive and available copies must not exceed total copies")
	ErrInvalidPrice          = errors.New("price must not be negative")
	ErrInvalidStatus         = errors.New("unknown status")
	ErrInvalidMemberID       = errors.New("member id must have 1 to 10 characters")
	ErrInvalidName           = errors.New("name must have 1 to 50 characters")
	ErrInvalidPhone          = errors.New("phone must have at most 15 digits, spaces, dashes, parentheses or plus signs")
	ErrInvalidEmail          = errors.New("email is malformed")
	ErrInvalidAddress        = errors.New("address must have at most 200 characters")
	ErrInvalidMembershipType = errors.New("unknown membership type")
	ErrInvalidLoanID         = errors.New("loan id must be L followed by 9 digits")
	ErrInvalidDate           = errors.New("date must be YYYY-MM-DD with a year between 1900 and 2100")
	ErrInvalidLoanPeriod     = errors.New("due date must not be before loan date")

	ErrBookNotFound         = errors.Join(ErrNotFound, errors.New("book not found"))
	ErrMemberNotFound       = errors.Join(ErrNotFound, errors.New("member not found"))
	ErrLoanNotFound         = errors.Join(ErrNotFound, errors.New("loan not found"))
	ErrDuplicateISBN        = errors.Join(ErrDuplicate, errors.New("isbn already in catalog"))
	ErrDuplicateMemberID    = errors.Join(ErrDuplicate, errors.New("member id already registered"))
	ErrDuplicateEmail       = errors.Join(ErrDuplicate, errors.New("email already registered"))
	ErrDuplicatePhone       = errors.Join(ErrDuplicate, errors.New("phone already registered"))
	ErrDuplicateLoanID      = errors.Join(ErrDuplicate, errors.New("loan id already exists"))
	ErrBookUnavailable      = errors.New("no copy of the book is available")
	ErrBookDiscontinued     = errors.New("book is discontinued")
	ErrLoanLimitReached     = errors.New("member reached the loan limit")
	ErrMemberNotActive      = errors.New("member is not active")
	ErrOutstandingFines     = errors.New("member has outstanding fines")
	ErrMemberHasActiveLoans = errors.New("member has active loans")
	ErrBookHasActiveLoans   = errors.New("book has active loans")
	ErrLoanNotActive        = errors.New("loan is not active")
	ErrLoanNotRenewable     = errors.New("loan cannot be renewed")
	ErrNoFineDue            = errors.New("no fine is due on the loan")
	ErrInvalidPayment       = errors.New("payment amount must be positive")
)
