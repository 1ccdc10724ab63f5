package testutil

import (
	"context"
	"sync"
	"time"

	"gymstack/internal/domain/subscription"
)

// MemorySubscriptionRepo is an in-memory subscription.Repository.
type MemorySubscriptionRepo struct {
	mu     sync.Mutex
	items  map[uint]*subscription.Subscription
	nextID uint

	CreateErr error
	UpdateErr error
}

func NewMemorySubscriptionRepo() *MemorySubscriptionRepo {
	return &MemorySubscriptionRepo{items: make(map[uint]*subscription.Subscription), nextID: 1}
}

func cloneSubscription(s *subscription.Subscription) *subscription.Subscription {
	var cancelledAt *time.Time
	if c := s.CancelledAt(); c != nil {
		v := *c
		cancelledAt = &v
	}
	clone, err := subscription.ReconstructSubscription(
		s.ID(), s.SID(), s.OrganizationID(), s.PlanSlug(), s.Status(),
		s.PricePaid(), s.Currency(), s.CurrentPeriodStart(), s.CurrentPeriodEnd(),
		cancelledAt, s.Version(), s.CreatedAt(), s.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemorySubscriptionRepo) Create(ctx context.Context, s *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	if s.ID() == 0 {
		if err := s.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[s.ID()] = cloneSubscription(s)
	return nil
}

func (r *MemorySubscriptionRepo) GetByID(ctx context.Context, subID uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[subID]
	if !ok {
		return nil, subscription.ErrSubscriptionNotFound
	}
	return cloneSubscription(s), nil
}

func (r *MemorySubscriptionRepo) GetByOrganization(ctx context.Context, organizationID uint) (*subscription.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.items {
		if s.OrganizationID() == organizationID {
			return cloneSubscription(s), nil
		}
	}
	return nil, subscription.ErrSubscriptionNotFound
}

func (r *MemorySubscriptionRepo) Update(ctx context.Context, s *subscription.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	if _, ok := r.items[s.ID()]; !ok {
		return subscription.ErrSubscriptionNotFound
	}
	r.items[s.ID()] = cloneSubscription(s)
	return nil
}

func (r *MemorySubscriptionRepo) DeleteByOrganization(ctx context.Context, organizationID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.items {
		if s.OrganizationID() == organizationID {
			delete(r.items, id)
		}
	}
	return nil
}

// Count returns the number of stored subscriptions.
func (r *MemorySubscriptionRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *MemorySubscriptionRepo) Snapshot() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*subscription.Subscription, len(r.items))
	for k, v := range r.items {
		snap[k] = v
	}
	return subscriptionSnapshot{items: snap, nextID: r.nextID}
}

func (r *MemorySubscriptionRepo) Restore(snapshot any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := snapshot.(subscriptionSnapshot)
	r.items = make(map[uint]*subscription.Subscription, len(s.items))
	for k, v := range s.items {
		r.items[k] = v
	}
	r.nextID = s.nextID
}

type subscriptionSnapshot struct {
	items  map[uint]*subscription.Subscription
	nextID uint
}
