package testutil

import (
	"context"
	"sort"
	"sync"

	"gymstack/internal/domain/plan"
)

// MemoryPlanRepo is an in-memory plan.Repository.
type MemoryPlanRepo struct {
	mu     sync.Mutex
	items  map[uint]*plan.Plan
	nextID uint

	CreateErr error
	UpdateErr error
}

func NewMemoryPlanRepo() *MemoryPlanRepo {
	return &MemoryPlanRepo{items: make(map[uint]*plan.Plan), nextID: 1}
}

func clonePlan(p *plan.Plan) *plan.Plan {
	clone, err := plan.ReconstructPlan(
		p.ID(), p.SID(), p.OrganizationID(), p.Name(), p.Slug(), p.Description(),
		p.Price(), p.Currency(), p.DurationDays(), p.Status(),
		p.Version(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryPlanRepo) Create(ctx context.Context, p *plan.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, existing := range r.items {
		if existing.OrganizationID() == p.OrganizationID() && existing.Slug() == p.Slug() {
			return plan.ErrDuplicateSlug
		}
	}
	if p.ID() == 0 {
		if err := p.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[p.ID()] = clonePlan(p)
	return nil
}

func (r *MemoryPlanRepo) GetByID(ctx context.Context, planID, organizationID uint) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[planID]
	if !ok || p.OrganizationID() != organizationID {
		return nil, plan.ErrPlanNotFound
	}
	return clonePlan(p), nil
}

func (r *MemoryPlanRepo) GetBySlug(ctx context.Context, slug string, organizationID uint) (*plan.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.Slug() == slug && p.OrganizationID() == organizationID {
			return clonePlan(p), nil
		}
	}
	return nil, plan.ErrPlanNotFound
}

func (r *MemoryPlanRepo) Update(ctx context.Context, p *plan.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	existing, ok := r.items[p.ID()]
	if !ok || existing.OrganizationID() != p.OrganizationID() {
		return plan.ErrPlanNotFound
	}
	r.items[p.ID()] = clonePlan(p)
	return nil
}

func (r *MemoryPlanRepo) Delete(ctx context.Context, planID, organizationID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[planID]
	if !ok || p.OrganizationID() != organizationID {
		return plan.ErrPlanNotFound
	}
	delete(r.items, planID)
	return nil
}

func (r *MemoryPlanRepo) List(ctx context.Context, organizationID uint, offset, limit int) ([]*plan.Plan, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*plan.Plan
	for _, p := range r.items {
		if p.OrganizationID() == organizationID {
			all = append(all, clonePlan(p))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (r *MemoryPlanRepo) Snapshot() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*plan.Plan, len(r.items))
	for k, v := range r.items {
		snap[k] = v
	}
	return planSnapshot{items: snap, nextID: r.nextID}
}

func (r *MemoryPlanRepo) Restore(snapshot any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := snapshot.(planSnapshot)
	r.items = make(map[uint]*plan.Plan, len(s.items))
	for k, v := range s.items {
		r.items[k] = v
	}
	r.nextID = s.nextID
}

type planSnapshot struct {
	items  map[uint]*plan.Plan
	nextID uint
}
