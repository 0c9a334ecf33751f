package core

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
	"time"
)

type MembershipType string

const (
	MembershipRegular MembershipType = "R"
	MembershipPremium MembershipType = "P"
)

type MemberStatus string

const (
	MemberStatusActive      MemberStatus = "A"
	MemberStatusSuspended   MemberStatus = "S"
	MemberStatusDeactivated MemberStatus = "D"
)

// Member is a registered library user.
type Member struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Address   string
	JoinDate  time.Time
	Type      MembershipType
	LoanCount int
	Status    MemberStatus
}

// Validate checks every field rule and returns all violations joined with ErrInvalidInput.
func (m Member) Validate() error {
	var errs []error

	if !lengthBetween(m.ID, 1, 10) {
		errs = append(errs, ErrInvalidMemberID)
	}

	if !lengthBetween(m.Name, 1, 50) {
		errs = append(errs, ErrInvalidName)
	}

	if !ValidPhone(m.Phone) {
		errs = append(errs, ErrInvalidPhone)
	}

	if !ValidEmail(m.Email) {
		errs = append(errs, ErrInvalidEmail)
	}

	if !lengthBetween(m.Address, 0, 200) {
		errs = append(errs, ErrInvalidAddress)
	}

	if !validDate(m.JoinDate) {
		errs = append(errs, ErrInvalidDate)
	}

	if m.Type != MembershipRegular && m.Type != MembershipPremium {
		errs = append(errs, ErrInvalidMembershipType)
	}

	switch m.Status {
	case MemberStatusActive, MemberStatusSuspended, MemberStatusDeactivated:
	default:
		errs = append(errs, ErrInvalidStatus)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidInput}, errs...)...)
	}

	return nil
}

// IsActive reports whether the member may use the library.
func (m Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

// ValidPhone accepts 1 to 15 characters of digits, spaces, '-', '(', ')' and '+', with at least one digit.
func ValidPhone(phone string) bool {
	if len(phone) == 0 || len(phone) > 15 {
		return false
	}

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ', r == '-', r == '(', r == ')', r == '+':
		default:
			return false
		}
	}

	return digits > 0
}

// ValidEmail requires a non-empty local part and a dot somewhere after the '@'.
func ValidEmail(email string) bool {
	if len(email) == 0 || len(email) > 100 || strings.ContainsAny(email, " \t") {
		return false
	}

	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")

	return at > 0 && at == strings.LastIndex(email, "@") && dot > at+1 && dot < len(email)-1
}

func CompareMemberID(a, b Member) int {
	return cmp.Compare(a.ID, b.ID)
}

// CompareMemberName orders case-insensitively by name.
func CompareMemberName(a, b Member) int {
	return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

func FormatMember(m Member) string {
	return fmt.Sprintf(
		"%-10s | %-25.25s | %-15s | %-25.25s | %s | %s | loans %d | %s",
		m.ID, m.Name, m.Phone, m.Email, FormatDate(m.JoinDate), m.Type, m.LoanCount, m.Status,
	)
}
