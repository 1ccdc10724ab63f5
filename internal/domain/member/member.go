package member

import (
	"fmt"
	"strings"
	"time"

	"gymstack/internal/shared/id"
)

// Member represents a gym customer belonging to one organization.
//
// The isActive flag mirrors the member's membership state: it is true exactly
// while the member holds an ACTIVE membership. The flag is only ever flipped
// inside a unit-of-work transaction together with the membership write, never
// through a bare update.
type Member struct {
	id             uint
	sid            string
	organizationID uint
	name           string
	email          string
	phone          string
	notes          string
	isActive       bool
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewMember creates a new member for an organization. Members start inactive;
// activation happens when their first membership becomes active.
func NewMember(organizationID uint, name, email, phone string) (*Member, error) {
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("member name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("member name too long (max 100 characters)")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}

	now := time.Now()
	return &Member{
		sid:            id.MustGenerateWithPrefix(id.PrefixMember, id.DefaultLength),
		organizationID: organizationID,
		name:           name,
		email:          email,
		phone:          phone,
		isActive:       false,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructMember reconstructs a member from persistence.
func ReconstructMember(
	memberID uint,
	sid string,
	organizationID uint,
	name, email, phone, notes string,
	isActive bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Member, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if organizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}

	return &Member{
		id:             memberID,
		sid:            sid,
		organizationID: organizationID,
		name:           name,
		email:          email,
		phone:          phone,
		notes:          notes,
		isActive:       isActive,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (m *Member) ID() uint             { return m.id }
func (m *Member) SID() string          { return m.sid }
func (m *Member) OrganizationID() uint { return m.organizationID }
func (m *Member) Name() string         { return m.name }
func (m *Member) Email() string        { return m.email }
func (m *Member) Phone() string        { return m.phone }
func (m *Member) Notes() string        { return m.notes }
func (m *Member) IsActive() bool       { return m.isActive }
func (m *Member) Version() int         { return m.version }
func (m *Member) CreatedAt() time.Time { return m.createdAt }
func (m *Member) UpdatedAt() time.Time { return m.updatedAt }

// SetID sets the member ID (only for persistence layer use)
func (m *Member) SetID(memberID uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if memberID == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = memberID
	return nil
}

// UpdateContact patches the member's contact fields. Empty strings leave the
// current value in place.
func (m *Member) UpdateContact(name, email, phone, notes string) error {
	if name != "" {
		if len(name) > 100 {
			return fmt.Errorf("member name too long (max 100 characters)")
		}
		m.name = name
	}
	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if !strings.Contains(email, "@") {
			return fmt.Errorf("invalid email address: %s", email)
		}
		m.email = email
	}
	if phone != "" {
		m.phone = phone
	}
	if notes != "" {
		m.notes = notes
	}
	m.touch()
	return nil
}

// Activate marks the member active. Only unit-of-work transactions call this,
// paired with the membership write.
func (m *Member) Activate() {
	if m.isActive {
		return
	}
	m.isActive = true
	m.touch()
}

// Deactivate marks the member inactive. Only unit-of-work transactions call
// this, paired with the membership write.
func (m *Member) Deactivate() {
	if !m.isActive {
		return
	}
	m.isActive = false
	m.touch()
}

func (m *Member) touch() {
	m.updatedAt = time.Now()
	m.version++
}
