package testutil

import (
	"context"
	"sort"
	"sync"

	"gymstack/internal/domain/member"
)

// MemoryMemberRepo is an in-memory member.Repository.
type MemoryMemberRepo struct {
	mu     sync.Mutex
	items  map[uint]*member.Member
	nextID uint

	CreateErr error
	UpdateErr error
}

func NewMemoryMemberRepo() *MemoryMemberRepo {
	return &MemoryMemberRepo{items: make(map[uint]*member.Member), nextID: 1}
}

func cloneMember(m *member.Member) *member.Member {
	clone, err := member.ReconstructMember(
		m.ID(), m.SID(), m.OrganizationID(), m.Name(), m.Email(), m.Phone(), m.Notes(),
		m.IsActive(), m.Version(), m.CreatedAt(), m.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryMemberRepo) Create(ctx context.Context, m *member.Member) error {
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
	r.items[m.ID()] = cloneMember(m)
	return nil
}

func (r *MemoryMemberRepo) GetByID(ctx context.Context, memberID, organizationID uint) (*member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[memberID]
	if !ok || m.OrganizationID() != organizationID {
		return nil, member.ErrMemberNotFound
	}
	return cloneMember(m), nil
}

func (r *MemoryMemberRepo) GetBySID(ctx context.Context, sid string, organizationID uint) (*member.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.SID() == sid && m.OrganizationID() == organizationID {
			return cloneMember(m), nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (r *MemoryMemberRepo) Update(ctx context.Context, m *member.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	existing, ok := r.items[m.ID()]
	if !ok || existing.OrganizationID() != m.OrganizationID() {
		return member.ErrMemberNotFound
	}
	r.items[m.ID()] = cloneMember(m)
	return nil
}

func (r *MemoryMemberRepo) Delete(ctx context.Context, memberID, organizationID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[memberID]
	if !ok || m.OrganizationID() != organizationID {
		return member.ErrMemberNotFound
	}
	delete(r.items, memberID)
	return nil
}

func (r *MemoryMemberRepo) List(ctx context.Context, organizationID uint, offset, limit int) ([]*member.Member, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*member.Member
	for _, m := range r.items {
		if m.OrganizationID() == organizationID {
			all = append(all, cloneMember(m))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (r *MemoryMemberRepo) CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, m := range r.items {
		if m.OrganizationID() == organizationID && m.IsActive() {
			count++
		}
	}
	return count, nil
}

func (r *MemoryMemberRepo) Snapshot() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*member.Member, len(r.items))
	for k, v := range r.items {
		snap[k] = v
	}
	return memberSnapshot{items: snap, nextID: r.nextID}
}

func (r *MemoryMemberRepo) Restore(snapshot any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := snapshot.(memberSnapshot)
	r.items = make(map[uint]*member.Member, len(s.items))
	for k, v := range s.items {
		r.items[k] = v
	}
	r.nextID = s.nextID
}

type memberSnapshot struct {
	items  map[uint]*member.Member
	nextID uint
}
