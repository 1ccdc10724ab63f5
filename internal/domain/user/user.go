package user

import (
	"fmt"
	"strings"
	"time"

	"gymstack/internal/domain/permission"
)

// User represents a staff account of an organization. A user without an
// organization is an orphan created by the identity provider before the
// organization onboarding step attaches it.
type User struct {
	id             uint
	organizationID *uint
	email          string
	name           string
	passwordHash   string
	role           permission.Role
	isActive       bool
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser creates a new user. organizationID may be nil for orphan users.
func NewUser(email, name, passwordHash string, role permission.Role, organizationID *uint) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if role != "" && !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		organizationID: organizationID,
		email:          email,
		name:           name,
		passwordHash:   passwordHash,
		role:           role,
		isActive:       true,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence.
func ReconstructUser(
	userID uint,
	organizationID *uint,
	email, name, passwordHash string,
	role permission.Role,
	isActive bool,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if role != "" && !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:             userID,
		organizationID: organizationID,
		email:          email,
		name:           name,
		passwordHash:   passwordHash,
		role:           role,
		isActive:       isActive,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *User) ID() uint                  { return u.id }
func (u *User) OrganizationID() *uint     { return u.organizationID }
func (u *User) Email() string             { return u.email }
func (u *User) Name() string              { return u.name }
func (u *User) PasswordHash() string      { return u.passwordHash }
func (u *User) Role() permission.Role     { return u.role }
func (u *User) IsActive() bool            { return u.isActive }
func (u *User) Version() int              { return u.version }
func (u *User) CreatedAt() time.Time      { return u.createdAt }
func (u *User) UpdatedAt() time.Time      { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(userID uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = userID
	return nil
}

// AttachToOrganization binds an orphan user to an organization with a role.
func (u *User) AttachToOrganization(organizationID uint, role permission.Role) error {
	if u.organizationID != nil {
		return fmt.Errorf("user already belongs to an organization")
	}
	if organizationID == 0 {
		return fmt.Errorf("organization ID is required")
	}
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.organizationID = &organizationID
	u.role = role
	u.touch()
	return nil
}

// ChangeRole updates the user's role within its organization.
func (u *User) ChangeRole(role permission.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.touch()
	return nil
}

// Rename changes the display name.
func (u *User) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.touch()
	return nil
}

// Deactivate disables the account.
func (u *User) Deactivate() {
	if !u.isActive {
		return
	}
	u.isActive = false
	u.touch()
}

// Activate re-enables the account.
func (u *User) Activate() {
	if u.isActive {
		return
	}
	u.isActive = true
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now()
	u.version++
}
