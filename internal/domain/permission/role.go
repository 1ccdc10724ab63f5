package permission

// Role is the role a user holds within an organization. GOD is the
// cross-tenant super-admin role used by the system console.
type Role string

const (
	RoleGod     Role = "god"
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleTrainer Role = "trainer"
)

// AllRoles lists every assignable role.
var AllRoles = []Role{RoleGod, RoleOwner, RoleAdmin, RoleStaff, RoleTrainer}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGod, RoleOwner, RoleAdmin, RoleStaff, RoleTrainer:
		return true
	}
	return false
}

// DisplayLabel returns the human-readable label used in denial messages.
func (r Role) DisplayLabel() string {
	switch r {
	case RoleGod:
		return "System Administrator"
	case RoleOwner:
		return "Owner"
	case RoleAdmin:
		return "Administrator"
	case RoleStaff:
		return "Staff"
	case RoleTrainer:
		return "Trainer"
	}
	return ""
}

// ParseRole parses a role string, returning ok=false for unknown values.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
