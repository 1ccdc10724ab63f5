package plan

import (
	"fmt"
	"time"

	"gymstack/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

var validCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"BRL": true,
	"MXN": true,
}

// Plan is a gym-level pricing plan an organization offers to its members.
// Not to be confused with the organization plan that governs tenant
// entitlements.
type Plan struct {
	id             uint
	sid            string
	organizationID uint
	name           string
	slug           string
	description    string
	price          uint64
	currency       string
	durationDays   int
	status         Status
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPlan(organizationID uint, name, slug, description string, price uint64, currency string, durationDays int) (*Plan, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if !validCurrencies[currency] {
		return nil, fmt.Errorf("invalid currency code: %s", currency)
	}
	if durationDays <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	now := time.Now()
	return &Plan{
		sid:            id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
		organizationID: organizationID,
		name:           name,
		slug:           slug,
		description:    description,
		price:          price,
		currency:       currency,
		durationDays:   durationDays,
		status:         StatusActive,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructPlan(
	planID uint,
	sid string,
	organizationID uint,
	name, slug, description string,
	price uint64,
	currency string,
	durationDays int,
	status Status,
	version int,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if status != StatusActive && status != StatusArchived {
		return nil, fmt.Errorf("invalid plan status: %s", status)
	}

	return &Plan{
		id:             planID,
		sid:            sid,
		organizationID: organizationID,
		name:           name,
		slug:           slug,
		description:    description,
		price:          price,
		currency:       currency,
		durationDays:   durationDays,
		status:         status,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) SID() string          { return p.sid }
func (p *Plan) OrganizationID() uint { return p.organizationID }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) Slug() string         { return p.slug }
func (p *Plan) Description() string  { return p.description }
func (p *Plan) Price() uint64        { return p.price }
func (p *Plan) Currency() string     { return p.currency }
func (p *Plan) DurationDays() int    { return p.durationDays }
func (p *Plan) Status() Status       { return p.status }
func (p *Plan) Version() int         { return p.version }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

func (p *Plan) IsActive() bool { return p.status == StatusActive }

func (p *Plan) SetID(planID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = planID
	return nil
}

// Update patches the mutable plan fields. Zero values leave fields unchanged.
func (p *Plan) Update(name, description string, price *uint64, durationDays *int) error {
	if name != "" {
		if len(name) > 100 {
			return fmt.Errorf("plan name too long (max 100 characters)")
		}
		p.name = name
	}
	if description != "" {
		p.description = description
	}
	if price != nil {
		p.price = *price
	}
	if durationDays != nil {
		if *durationDays <= 0 {
			return fmt.Errorf("duration must be positive")
		}
		p.durationDays = *durationDays
	}
	p.touch()
	return nil
}

// Archive retires the plan from new memberships without touching existing ones.
func (p *Plan) Archive() {
	if p.status == StatusArchived {
		return
	}
	p.status = StatusArchived
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = time.Now()
	p.version++
}
