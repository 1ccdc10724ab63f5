package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"gymstack/internal/domain/membership"
)

// MemoryMembershipRepo is an in-memory membership.Repository.
type MemoryMembershipRepo struct {
	mu     sync.Mutex
	items  map[uint]*membership.Membership
	nextID uint

	CreateErr error
	UpdateErr error
}

func NewMemoryMembershipRepo() *MemoryMembershipRepo {
	return &MemoryMembershipRepo{items: make(map[uint]*membership.Membership), nextID: 1}
}

func cloneMembership(m *membership.Membership) *membership.Membership {
	var deletedAt *time.Time
	if d := m.DeletedAt(); d != nil {
		v := *d
		deletedAt = &v
	}
	clone, err := membership.ReconstructMembership(
		m.ID(), m.SID(), m.OrganizationID(), m.MemberID(), m.PlanID(), m.Status(),
		m.PricePaid(), m.Currency(), m.StartDate(), m.EndDate(), deletedAt,
		m.Version(), m.CreatedAt(), m.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryMembershipRepo) Create(ctx context.Context, m *membership.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	if m.ID() == 0 {
		if err := m.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[m.ID()] = cloneMembership(m)
	return nil
}

func (r *MemoryMembershipRepo) GetByID(ctx context.Context, membershipID, organizationID uint) (*membership.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[membershipID]
	if !ok || m.OrganizationID() != organizationID || m.IsDeleted() {
		return nil, membership.ErrMembershipNotFound
	}
	return cloneMembership(m), nil
}

func (r *MemoryMembershipRepo) GetByIDIncludingDeleted(ctx context.Context, membershipID, organizationID uint) (*membership.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[membershipID]
	if !ok || m.OrganizationID() != organizationID {
		return nil, membership.ErrMembershipNotFound
	}
	return cloneMembership(m), nil
}

func (r *MemoryMembershipRepo) Update(ctx context.Context, m *membership.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	existing, ok := r.items[m.ID()]
	if !ok || existing.OrganizationID() != m.OrganizationID() {
		return membership.ErrMembershipNotFound
	}
	r.items[m.ID()] = cloneMembership(m)
	return nil
}

func (r *MemoryMembershipRepo) FindOpenByMember(ctx context.Context, memberID, organizationID uint) (*membership.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.MemberID() == memberID && m.OrganizationID() == organizationID && m.IsOpen() {
			return cloneMembership(m), nil
		}
	}
	return nil, nil
}

func (r *MemoryMembershipRepo) ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*membership.Membership, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*membership.Membership
	for _, m := range r.items {
		if m.OrganizationID() == organizationID && !m.IsDeleted() {
			all = append(all, cloneMembership(m))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (r *MemoryMembershipRepo) ListByMember(ctx context.Context, memberID, organizationID uint) ([]*membership.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*membership.Membership
	for _, m := range r.items {
		if m.MemberID() == memberID && m.OrganizationID() == organizationID && !m.IsDeleted() {
			all = append(all, cloneMembership(m))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all, nil
}

func (r *MemoryMembershipRepo) Snapshot() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*membership.Membership, len(r.items))
	for k, v := range r.items {
		snap[k] = v
	}
	return membershipSnapshot{items: snap, nextID: r.nextID}
}

func (r *MemoryMembershipRepo) Restore(snapshot any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := snapshot.(membershipSnapshot)
	r.items = make(map[uint]*membership.Membership, len(s.items))
	for k, v := range s.items {
		r.items[k] = v
	}
	r.nextID = s.nextID
}

type membershipSnapshot struct {
	items  map[uint]*membership.Membership
	nextID uint
}
