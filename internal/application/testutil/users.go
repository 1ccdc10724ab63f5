package testutil

import (
	"context"
	"sort"
	"sync"

	"gymstack/internal/domain/user"
)

// MemoryUserRepo is an in-memory user.Repository.
type MemoryUserRepo struct {
	mu     sync.Mutex
	items  map[uint]*user.User
	nextID uint

	CreateErr error
	UpdateErr error
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{items: make(map[uint]*user.User), nextID: 1}
}

func cloneUser(u *user.User) *user.User {
	var orgID *uint
	if id := u.OrganizationID(); id != nil {
		v := *id
		orgID = &v
	}
	clone, err := user.ReconstructUser(
		u.ID(), orgID, u.Email(), u.Name(), u.PasswordHash(), u.Role(),
		u.IsActive(), u.Version(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, existing := range r.items {
		if existing.Email() == u.Email() {
			return user.ErrDuplicateEmail
		}
	}
	if u.ID() == 0 {
		if err := u.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[u.ID()] = cloneUser(u)
	return nil
}

func (r *MemoryUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email() == email {
			return cloneUser(u), nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *MemoryUserRepo) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	if _, ok := r.items[u.ID()]; !ok {
		return user.ErrUserNotFound
	}
	r.items[u.ID()] = cloneUser(u)
	return nil
}

func (r *MemoryUserRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryUserRepo) ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*user.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*user.User
	for _, u := range r.items {
		if id := u.OrganizationID(); id != nil && *id == organizationID {
			all = append(all, cloneUser(u))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (r *MemoryUserRepo) CountActiveByOrganization(ctx context.Context, organizationID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, u := range r.items {
		if id := u.OrganizationID(); id != nil && *id == organizationID && u.IsActive() {
			count++
		}
	}
	return count, nil
}

// Count returns the number of stored users.
func (r *MemoryUserRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *MemoryUserRepo) Snapshot() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[uint]*user.User, len(r.items))
	for k, v := range r.items {
		snap[k] = v
	}
	return userSnapshot{items: snap, nextID: r.nextID}
}

func (r *MemoryUserRepo) Restore(snapshot any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := snapshot.(userSnapshot)
	r.items = make(map[uint]*user.User, len(s.items))
	for k, v := range s.items {
		r.items[k] = v
	}
	r.nextID = s.nextID
}

type userSnapshot struct {
	items  map[uint]*user.User
	nextID uint
}
