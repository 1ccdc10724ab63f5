package membership

import (
	"fmt"
	"time"

	"gymstack/internal/shared/id"
)

// Status is the membership lifecycle status.
// PENDING -> ACTIVE -> {EXPIRED, CANCELLED}. Soft deletion is an orthogonal
// axis tracked by deletedAt.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the status counts against the one-open-membership
// invariant.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusActive
}

// Membership is a member's time-boxed subscription to a gym plan.
type Membership struct {
	id             uint
	sid            string
	organizationID uint
	memberID       uint
	planID         uint
	status         Status
	pricePaid      uint64
	currency       string
	startDate      time.Time
	endDate        time.Time
	deletedAt      *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewMembership creates a new membership. startImmediately selects ACTIVE over
// PENDING as the initial status.
func NewMembership(organizationID, memberID, planID uint, pricePaid uint64, currency string, startDate, endDate time.Time, startImmediately bool) (*Membership, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	status := StatusPending
	if startImmediately {
		status = StatusActive
	}

	now := time.Now()
	return &Membership{
		sid:            id.MustGenerateWithPrefix(id.PrefixMembership, id.DefaultLength),
		organizationID: organizationID,
		memberID:       memberID,
		planID:         planID,
		status:         status,
		pricePaid:      pricePaid,
		currency:       currency,
		startDate:      startDate,
		endDate:        endDate,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructMembership reconstructs a membership from persistence.
func ReconstructMembership(
	membershipID uint,
	sid string,
	organizationID, memberID, planID uint,
	status Status,
	pricePaid uint64,
	currency string,
	startDate, endDate time.Time,
	deletedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Membership, error) {
	if membershipID == 0 {
		return nil, fmt.Errorf("membership ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid membership status: %s", status)
	}

	return &Membership{
		id:             membershipID,
		sid:            sid,
		organizationID: organizationID,
		memberID:       memberID,
		planID:         planID,
		status:         status,
		pricePaid:      pricePaid,
		currency:       currency,
		startDate:      startDate,
		endDate:        endDate,
		deletedAt:      deletedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (m *Membership) ID() uint              { return m.id }
func (m *Membership) SID() string           { return m.sid }
func (m *Membership) OrganizationID() uint  { return m.organizationID }
func (m *Membership) MemberID() uint        { return m.memberID }
func (m *Membership) PlanID() uint          { return m.planID }
func (m *Membership) Status() Status        { return m.status }
func (m *Membership) PricePaid() uint64     { return m.pricePaid }
func (m *Membership) Currency() string      { return m.currency }
func (m *Membership) StartDate() time.Time  { return m.startDate }
func (m *Membership) EndDate() time.Time    { return m.endDate }
func (m *Membership) DeletedAt() *time.Time { return m.deletedAt }
func (m *Membership) Version() int          { return m.version }
func (m *Membership) CreatedAt() time.Time  { return m.createdAt }
func (m *Membership) UpdatedAt() time.Time  { return m.updatedAt }

// SetID sets the membership ID (only for persistence layer use)
func (m *Membership) SetID(membershipID uint) error {
	if m.id != 0 {
		return fmt.Errorf("membership ID is already set")
	}
	if membershipID == 0 {
		return fmt.Errorf("membership ID cannot be zero")
	}
	m.id = membershipID
	return nil
}

// IsOpen reports whether this membership blocks creating another one for the
// same member.
func (m *Membership) IsOpen() bool {
	return m.deletedAt == nil && m.status.IsOpen()
}

// IsDeleted reports whether the membership is soft-deleted.
func (m *Membership) IsDeleted() bool {
	return m.deletedAt != nil
}

// Activate moves a pending membership to active.
func (m *Membership) Activate() error {
	if m.status == StatusActive {
		return nil
	}
	if m.status != StatusPending {
		return ErrInvalidStatusTransition(m.status, StatusActive)
	}
	m.status = StatusActive
	m.touch()
	return nil
}

// Cancel cancels a pending or active membership.
func (m *Membership) Cancel() error {
	if m.status == StatusCancelled {
		return nil
	}
	if !m.status.IsOpen() {
		return ErrInvalidStatusTransition(m.status, StatusCancelled)
	}
	m.status = StatusCancelled
	m.touch()
	return nil
}

// Expire marks an active membership as expired.
func (m *Membership) Expire() error {
	if m.status == StatusExpired {
		return nil
	}
	if m.status != StatusActive {
		return ErrInvalidStatusTransition(m.status, StatusExpired)
	}
	m.status = StatusExpired
	m.touch()
	return nil
}

// MarkDeleted soft-deletes the membership. Status is left untouched so a
// later restore can recover it.
func (m *Membership) MarkDeleted() {
	if m.deletedAt != nil {
		return
	}
	now := time.Now()
	m.deletedAt = &now
	m.touch()
}

// Restore clears the soft-delete marker.
func (m *Membership) Restore() {
	if m.deletedAt == nil {
		return
	}
	m.deletedAt = nil
	m.touch()
}

func (m *Membership) touch() {
	m.updatedAt = time.Now()
	m.version++
}
