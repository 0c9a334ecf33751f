package service

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/repository"
	"github.com/AntonStoeckl/library-catalog-go/container"
)

// MemberService manages memberships.
type MemberService struct {
	settings

	members *repository.MemberRepository
	loans   *repository.LoanRepository
}

func NewMemberService(
	members *repository.MemberRepository,
	loans *repository.LoanRepository,
	options ...Option,
) (*MemberService, error) {

	if members == nil || loans == nil {
		return nil, ErrNilRepository
	}

	s, err := newSettings(options)
	if err != nil {
		return nil, err
	}

	return &MemberService{settings: s, members: members, loans: loans}, nil
}

// Register adds a member. ID, email and phone must not belong to anybody else.
// A zero JoinDate becomes today and an empty Status becomes active.
func (s *MemberService) Register(ctx context.Context, member core.Member) error {
	start := time.Now()

	err := s.register(ctx, member)
	s.observe("register_member", start, err, logAttrMemberID, member.ID)

	return err
}

func (s *MemberService) register(ctx context.Context, member core.Member) error {
	if member.JoinDate.IsZero() {
		member.JoinDate = s.today()
	}

	if member.Status == "" {
		member.Status = core.MemberStatusActive
	}

	member.LoanCount = 0

	if err := member.Validate(); err != nil {
		return err
	}

	if err := s.ensureContactUnique(member); err != nil {
		return err
	}

	if err := s.members.Add(member); err != nil {
		return err
	}

	return s.record(ctx, core.BuildMemberRegistered(member.ID, member.Name, member.Type, s.clock()))
}

// Update replaces the profile of a member. Status and loan count are kept.
func (s *MemberService) Update(member core.Member) error {
	existing, err := s.members.FindByID(member.ID)
	if err != nil {
		return err
	}

	if err = s.ensureContactUnique(member); err != nil {
		return err
	}

	member.Status = existing.Status
	member.LoanCount = existing.LoanCount
	if member.JoinDate.IsZero() {
		member.JoinDate = existing.JoinDate
	}

	return s.members.Update(member)
}

func (s *MemberService) ensureContactUnique(member core.Member) error {
	if other, err := s.members.FindByEmail(member.Email); err == nil && other.ID != member.ID {
		return core.ErrDuplicateEmail
	}

	if other, err := s.members.FindByPhone(member.Phone); err == nil && other.ID != member.ID {
		return core.ErrDuplicatePhone
	}

	return nil
}

// Deactivate closes a membership. It fails while the member holds any copy.
func (s *MemberService) Deactivate(ctx context.Context, id string) error {
	start := time.Now()

	err := s.changeStatus(ctx, id, core.MemberStatusDeactivated)
	s.observe("deactivate_member", start, err, logAttrMemberID, id)

	return err
}

func (s *MemberService) Suspend(ctx context.Context, id string) error {
	start := time.Now()

	err := s.changeStatus(ctx, id, core.MemberStatusSuspended)
	s.observe("suspend_member", start, err, logAttrMemberID, id)

	return err
}

// Reactivate lifts a suspension or a deactivation.
func (s *MemberService) Reactivate(ctx context.Context, id string) error {
	start := time.Now()

	err := s.changeStatus(ctx, id, core.MemberStatusActive)
	s.observe("reactivate_member", start, err, logAttrMemberID, id)

	return err
}

func (s *MemberService) changeStatus(ctx context.Context, id string, status core.MemberStatus) error {
	member, err := s.members.FindByID(id)
	if err != nil {
		return err
	}

	if member.Status == status {
		return nil
	}

	switch status {
	case core.MemberStatusDeactivated:
		active, activeErr := activeLoansOf(s.loans, id)
		if activeErr != nil {
			return activeErr
		}

		if len(active) > 0 {
			return core.ErrMemberHasActiveLoans
		}

		err = s.members.Deactivate(id)
	case core.MemberStatusSuspended:
		err = s.members.Suspend(id)
	default:
		err = s.members.Activate(id)
	}

	if err != nil {
		return err
	}

	return s.record(ctx, core.BuildMemberStatusChanged(id, status, s.clock()))
}

func (s *MemberService) Status(id string) (core.MemberStatus, error) {
	member, err := s.members.FindByID(id)
	if err != nil {
		return "", err
	}

	return member.Status, nil
}

// CanBorrow reports whether the member is active, owes nothing and is below the loan limit.
func (s *MemberService) CanBorrow(id string) (bool, error) {
	member, err := s.members.FindByID(id)
	if err != nil {
		return false, err
	}

	if !member.IsActive() {
		return false, nil
	}

	fines, err := outstandingFinesOf(s.loans, id)
	if err != nil {
		return false, err
	}

	if fines > 0 {
		return false, nil
	}

	remaining, err := s.RemainingLoanLimit(id)
	if err != nil {
		return false, err
	}

	return remaining > 0, nil
}

// RemainingLoanLimit returns how many more copies the member may hold.
func (s *MemberService) RemainingLoanLimit(id string) (int, error) {
	limit, err := s.MaxLoanLimit(id)
	if err != nil {
		return 0, err
	}

	active, err := activeLoansOf(s.loans, id)
	if err != nil {
		return 0, err
	}

	return max(limit-len(active), 0), nil
}

func (s *MemberService) MaxLoanLimit(id string) (int, error) {
	member, err := s.members.FindByID(id)
	if err != nil {
		return 0, err
	}

	return s.policy.LoanLimit(member.Type), nil
}

func (s *MemberService) OutstandingFines(id string) (float64, error) {
	if _, err := s.members.FindByID(id); err != nil {
		return 0, err
	}

	return outstandingFinesOf(s.loans, id)
}

func (s *MemberService) Search(criteria core.MemberSearchCriteria) (*container.Container[core.Member], error) {
	return s.members.Search(criteria)
}

func (s *MemberService) FindByID(id string) (core.Member, error) {
	return s.members.FindByID(id)
}

func (s *MemberService) FindByEmail(email string) (core.Member, error) {
	return s.members.FindByEmail(email)
}

func (s *MemberService) FindByName(name string) (*container.Container[core.Member], error) {
	return s.members.FindByName(name)
}

func (s *MemberService) All() (*container.Container[core.Member], error) {
	return s.members.All()
}

func (s *MemberService) Active() (*container.Container[core.Member], error) {
	return s.members.Active()
}

func (s *MemberService) Suspended() (*container.Container[core.Member], error) {
	return s.members.WithStatus(core.MemberStatusSuspended)
}

// WithOverdues returns each member holding an overdue copy once, in ID order.
// Only copies still out count, flagged or past their due date.
func (s *MemberService) WithOverdues() (*container.Container[core.Member], error) {
	today := s.today()

	loans, err := s.loans.All()
	if err != nil {
		return nil, err
	}

	overdue := make(map[string]struct{})
	for loan := range loans.All() {
		if loan.IsOut() && (loan.IsOverdue() || loan.DueDate.Before(today)) {
			overdue[loan.MemberID] = struct{}{}
		}
	}

	all, err := s.members.All()
	if err != nil {
		return nil, err
	}

	return all.Filter(func(m *core.Member) bool {
		_, ok := overdue[m.ID]
		return ok
	})
}

func (s *MemberService) TotalCount() int {
	return s.members.Count()
}

func (s *MemberService) ActiveCount() int {
	return s.members.ActiveCount()
}
