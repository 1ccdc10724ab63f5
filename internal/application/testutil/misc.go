package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"gymstack/internal/domain/announcement"
	"gymstack/internal/domain/attendance"
	"gymstack/internal/domain/product"
)

// MemoryProductRepo is an in-memory product.Repository.
type MemoryProductRepo struct {
	mu     sync.Mutex
	items  map[uint]*product.Product
	nextID uint
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{items: make(map[uint]*product.Product), nextID: 1}
}

func cloneProduct(p *product.Product) *product.Product {
	clone, err := product.ReconstructProduct(
		p.ID(), p.SID(), p.OrganizationID(), p.Name(), p.Description(),
		p.Price(), p.Currency(), p.Stock(), p.Version(), p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID() == 0 {
		if err := p.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[p.ID()] = cloneProduct(p)
	return nil
}

func (r *MemoryProductRepo) GetByID(ctx context.Context, productID, organizationID uint) (*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[productID]
	if !ok || p.OrganizationID() != organizationID {
		return nil, product.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *MemoryProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[p.ID()]
	if !ok || existing.OrganizationID() != p.OrganizationID() {
		return product.ErrProductNotFound
	}
	r.items[p.ID()] = cloneProduct(p)
	return nil
}

func (r *MemoryProductRepo) Delete(ctx context.Context, productID, organizationID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[productID]
	if !ok || p.OrganizationID() != organizationID {
		return product.ErrProductNotFound
	}
	delete(r.items, productID)
	return nil
}

func (r *MemoryProductRepo) List(ctx context.Context, organizationID uint, offset, limit int) ([]*product.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*product.Product
	for _, p := range r.items {
		if p.OrganizationID() == organizationID {
			all = append(all, cloneProduct(p))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

// MemoryAttendanceRepo is an in-memory attendance.Repository.
type MemoryAttendanceRepo struct {
	mu     sync.Mutex
	items  map[uint]*attendance.Attendance
	nextID uint
}

func NewMemoryAttendanceRepo() *MemoryAttendanceRepo {
	return &MemoryAttendanceRepo{items: make(map[uint]*attendance.Attendance), nextID: 1}
}

func cloneAttendance(a *attendance.Attendance) *attendance.Attendance {
	clone, err := attendance.ReconstructAttendance(
		a.ID(), a.OrganizationID(), a.MemberID(), a.RecordedBy(), a.CheckedInAt(), a.CreatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryAttendanceRepo) Create(ctx context.Context, a *attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID() == 0 {
		if err := a.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[a.ID()] = cloneAttendance(a)
	return nil
}

func (r *MemoryAttendanceRepo) ExistsInWindow(ctx context.Context, memberID, organizationID uint, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.items {
		if a.MemberID() == memberID && a.OrganizationID() == organizationID &&
			!a.CheckedInAt().Before(start) && a.CheckedInAt().Before(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryAttendanceRepo) ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*attendance.Attendance, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*attendance.Attendance
	for _, a := range r.items {
		if a.OrganizationID() == organizationID {
			all = append(all, cloneAttendance(a))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (r *MemoryAttendanceRepo) ListByMember(ctx context.Context, memberID, organizationID uint, offset, limit int) ([]*attendance.Attendance, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*attendance.Attendance
	for _, a := range r.items {
		if a.MemberID() == memberID && a.OrganizationID() == organizationID {
			all = append(all, cloneAttendance(a))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}

// MemoryAnnouncementRepo is an in-memory announcement.Repository.
type MemoryAnnouncementRepo struct {
	mu     sync.Mutex
	items  map[uint]*announcement.Announcement
	nextID uint
}

func NewMemoryAnnouncementRepo() *MemoryAnnouncementRepo {
	return &MemoryAnnouncementRepo{items: make(map[uint]*announcement.Announcement), nextID: 1}
}

func cloneAnnouncement(a *announcement.Announcement) *announcement.Announcement {
	clone, err := announcement.ReconstructAnnouncement(
		a.ID(), a.OrganizationID(), a.AuthorID(), a.Title(), a.Body(), a.BodyHTML(),
		a.PublishedAt(), a.CreatedAt(), a.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return clone
}

func (r *MemoryAnnouncementRepo) Create(ctx context.Context, a *announcement.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID() == 0 {
		if err := a.SetID(r.nextID); err != nil {
			return err
		}
		r.nextID++
	}
	r.items[a.ID()] = cloneAnnouncement(a)
	return nil
}

func (r *MemoryAnnouncementRepo) GetByID(ctx context.Context, announcementID, organizationID uint) (*announcement.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[announcementID]
	if !ok || a.OrganizationID() != organizationID {
		return nil, announcement.ErrAnnouncementNotFound
	}
	return cloneAnnouncement(a), nil
}

func (r *MemoryAnnouncementRepo) Delete(ctx context.Context, announcementID, organizationID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[announcementID]
	if !ok || a.OrganizationID() != organizationID {
		return announcement.ErrAnnouncementNotFound
	}
	delete(r.items, announcementID)
	return nil
}

func (r *MemoryAnnouncementRepo) ListByOrganization(ctx context.Context, organizationID uint, offset, limit int) ([]*announcement.Announcement, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*announcement.Announcement
	for _, a := range r.items {
		if a.OrganizationID() == organizationID {
			all = append(all, cloneAnnouncement(a))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return paginate(all, offset, limit), int64(len(all)), nil
}
