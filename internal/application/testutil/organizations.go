package testutil

import (
	"context"
	"sort"
	"sync"

	"gymstack/internal/domain/organization"
)

// MemoryOrganizationRepo is an in-memory organization.Repository.
type MemoryOrganizationRepo struct {
	mu     sync.Mutex
	items  map[uint]*organization.Organization
	nextID uint

	CreateErr error
	UpdateErr error
}

func NewMemoryOrganizationRepo() *MemoryOrganizationRepo {
	return &MemoryOrganizationRepo{items: make(map[uint]*organization.Organization), nextID: 1}
}

func cloneOrganization(o *organization.Organization) *organization.Organization {
	clone, err := organization.ReconstructOrganization(
		o.ID(), o.SID(), o.Name(), o.Slug(), o.ImageURL(), o.PlanSlug(), o.PlanName(),
		o.Config(), o.StorageUsedBytes(), o.Status(), o.Version(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryOrganizationRepo) Create(ctx context.Context, org *organization.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, existing := range r.items {
		if existing.Slug() == org.Slug() {
			return organization.ErrDuplicateSlug
		}
	}
	if org.ID() == 0 {
		if err := org.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[org.ID()] = cloneOrganization(org)
	return nil
}

func (r *MemoryOrganizationRepo) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, ok := r.items[id]
	if !ok {
		return nil, organization.ErrOrganizationNotFound
	}
	return cloneOrganization(org), nil
}

func (r *MemoryOrganizationRepo) GetBySID(ctx context.Context, sid string) (*organization.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, org := range r.items {
		if org.SID() == sid {
			return cloneOrganization(org), nil
		}
	}
	return nil, organization.ErrOrganizationNotFound
}

func (r *MemoryOrganizationRepo) GetBySlug(ctx context.Context, slug string) (*organization.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, org := range r.items {
		if org.Slug() == slug {
			return cloneOrganization(org), nil
		}
	}
	return nil, organization.ErrOrganizationNotFound
}

func (r *MemoryOrganizationRepo) Update(ctx context.Context, org *organization.Organization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	if _, ok := r.items[org.ID()]; !ok {
		return organization.ErrOrganizationNotFound
	}
	r.items[org.ID()] = cloneOrganization(org)
	return nil
}

func (r *MemoryOrganizationRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return organization.ErrOrganizationNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryOrganizationRepo) List(ctx context.Context, offset, limit int) ([]*organization.Organization, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*organization.Organization, 0, len(r.items))
	for _, org := range r.items {
		all = append(all, cloneOrganization(org))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

// Count returns the number of stored organizations.
func (r *MemoryOrganizationRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *MemoryOrganizationRepo) Snapshot() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*organization.Organization, len(r.items))
	for k, v := range r.items {
		snap[k] = v
	}
	return orgSnapshot{items: snap, nextID: r.nextID}
}

func (r *MemoryOrganizationRepo) Restore(snapshot any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := snapshot.(orgSnapshot)
	r.items = make(map[uint]*organization.Organization, len(s.items))
	for k, v := range s.items {
		r.items[k] = v
	}
	r.nextID = s.nextID
}

type orgSnapshot struct {
	items  map[uint]*organization.Organization
	nextID uint
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
