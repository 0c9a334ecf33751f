package repository

import (
	"errors"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/container"
)

// MemberRepository stores members ordered by ID.
type MemberRepository struct {
	members *container.Container[core.Member]
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{
		members: container.New(
			container.WithComparator(core.CompareMemberID),
			container.WithPrinter(core.FormatMember),
		),
	}
}

// Add validates member and inserts it at its ID position.
func (r *MemberRepository) Add(member core.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}

	if r.members.Contains(member) {
		return core.ErrDuplicateMemberID
	}

	return r.members.InsertSorted(member)
}

func (r *MemberRepository) FindByID(id string) (core.Member, error) {
	node := r.members.Search(core.Member{ID: id})
	if node == nil {
		return core.Member{}, core.ErrMemberNotFound
	}

	return *node.Record(), nil
}

func (r *MemberRepository) FindByEmail(email string) (core.Member, error) {
	return findOne(r.members, func(m *core.Member) bool { return m.Email == email }, core.ErrMemberNotFound)
}

func (r *MemberRepository) FindByPhone(phone string) (core.Member, error) {
	return findOne(r.members, func(m *core.Member) bool { return m.Phone == phone }, core.ErrMemberNotFound)
}

// FindByName returns the members whose name contains name, ignoring case.
func (r *MemberRepository) FindByName(name string) (*container.Container[core.Member], error) {
	return r.Search(core.MemberSearchCriteria{Name: name})
}

// Search returns the members matching criteria, in ID order.
func (r *MemberRepository) Search(criteria core.MemberSearchCriteria) (*container.Container[core.Member], error) {
	return r.members.Filter(func(m *core.Member) bool {
		return criteria.Matches(*m)
	})
}

// Update replaces the stored member carrying the same ID.
func (r *MemberRepository) Update(member core.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}

	node := r.members.Search(member)
	if node == nil {
		return core.ErrMemberNotFound
	}

	*node.Record() = member

	return nil
}

func (r *MemberRepository) Delete(id string) error {
	err := r.members.DeleteByValue(core.Member{ID: id})
	if errors.Is(err, container.ErrNotFound) {
		return core.ErrMemberNotFound
	}

	return err
}

func (r *MemberRepository) Suspend(id string) error {
	return r.setStatus(id, core.MemberStatusSuspended)
}

func (r *MemberRepository) Activate(id string) error {
	return r.setStatus(id, core.MemberStatusActive)
}

func (r *MemberRepository) Deactivate(id string) error {
	return r.setStatus(id, core.MemberStatusDeactivated)
}

func (r *MemberRepository) setStatus(id string, status core.MemberStatus) error {
	node := r.members.Search(core.Member{ID: id})
	if node == nil {
		return core.ErrMemberNotFound
	}

	node.Record().Status = status

	return nil
}

// AdjustLoanCount changes the member's loan count by delta. It never drops below 0.
func (r *MemberRepository) AdjustLoanCount(id string, delta int) error {
	node := r.members.Search(core.Member{ID: id})
	if node == nil {
		return core.ErrMemberNotFound
	}

	member := node.Record()
	member.LoanCount = max(member.LoanCount+delta, 0)

	return nil
}

func (r *MemberRepository) All() (*container.Container[core.Member], error) {
	return r.members.Clone()
}

func (r *MemberRepository) Active() (*container.Container[core.Member], error) {
	return r.Search(core.MemberSearchCriteria{OnlyActive: true})
}

// WithStatus returns the members in status.
func (r *MemberRepository) WithStatus(status core.MemberStatus) (*container.Container[core.Member], error) {
	return r.members.Filter(func(m *core.Member) bool {
		return m.Status == status
	})
}

func (r *MemberRepository) Count() int {
	return r.members.Len()
}

func (r *MemberRepository) ActiveCount() int {
	return countWhere(r.members, func(m *core.Member) bool {
		return m.IsActive()
	})
}
