package subscription

import (
	"fmt"
	"time"

	"gymstack/internal/shared/id"
)

type Status string

const (
	StatusTrialing  Status = "trialing"
	StatusActive    Status = "active"
	StatusPastDue   Status = "past_due"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTrialing, StatusActive, StatusPastDue, StatusCancelled:
		return true
	}
	return false
}

// Subscription is an organization's SaaS subscription to an organization
// plan. Created together with the organization inside a single unit of work;
// its price tracks the organization plan on upgrades.
type Subscription struct {
	id                 uint
	sid                string
	organizationID     uint
	planSlug           string
	status             Status
	pricePaid          uint64
	currency           string
	currentPeriodStart time.Time
	currentPeriodEnd   time.Time
	cancelledAt        *time.Time
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewTrialSubscription creates the free-trial subscription an organization
// starts with.
func NewTrialSubscription(organizationID uint, planSlug string, trialDays int) (*Subscription, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if planSlug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if trialDays <= 0 {
		return nil, fmt.Errorf("trial days must be positive")
	}

	now := time.Now()
	return &Subscription{
		sid:                id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		organizationID:     organizationID,
		planSlug:           planSlug,
		status:             StatusTrialing,
		pricePaid:          0,
		currency:           "USD",
		currentPeriodStart: now,
		currentPeriodEnd:   now.AddDate(0, 0, trialDays),
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence.
func ReconstructSubscription(
	subID uint,
	sid string,
	organizationID uint,
	planSlug string,
	status Status,
	pricePaid uint64,
	currency string,
	currentPeriodStart, currentPeriodEnd time.Time,
	cancelledAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if subID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:                 subID,
		sid:                sid,
		organizationID:     organizationID,
		planSlug:           planSlug,
		status:             status,
		pricePaid:          pricePaid,
		currency:           currency,
		currentPeriodStart: currentPeriodStart,
		currentPeriodEnd:   currentPeriodEnd,
		cancelledAt:        cancelledAt,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) SID() string                   { return s.sid }
func (s *Subscription) OrganizationID() uint          { return s.organizationID }
func (s *Subscription) PlanSlug() string              { return s.planSlug }
func (s *Subscription) Status() Status                { return s.status }
func (s *Subscription) PricePaid() uint64             { return s.pricePaid }
func (s *Subscription) Currency() string              { return s.currency }
func (s *Subscription) CurrentPeriodStart() time.Time { return s.currentPeriodStart }
func (s *Subscription) CurrentPeriodEnd() time.Time   { return s.currentPeriodEnd }
func (s *Subscription) CancelledAt() *time.Time       { return s.cancelledAt }
func (s *Subscription) Version() int                  { return s.version }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

func (s *Subscription) SetID(subID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if subID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = subID
	return nil
}

// ChangePlan repoints the subscription at a new organization plan and price.
// A trialing subscription becomes active on its first paid plan.
func (s *Subscription) ChangePlan(planSlug string, pricePaid uint64) error {
	if planSlug == "" {
		return fmt.Errorf("plan slug is required")
	}
	if s.status == StatusCancelled {
		return fmt.Errorf("cannot change plan of a cancelled subscription")
	}
	s.planSlug = planSlug
	s.pricePaid = pricePaid
	if s.status == StatusTrialing && pricePaid > 0 {
		s.status = StatusActive
	}
	s.touch()
	return nil
}

// Cancel cancels the subscription.
func (s *Subscription) Cancel() error {
	if s.status == StatusCancelled {
		return nil
	}
	now := time.Now()
	s.status = StatusCancelled
	s.cancelledAt = &now
	s.touch()
	return nil
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now()
	s.version++
}
