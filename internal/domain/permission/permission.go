// Package permission defines the static role and permission model.
// Roles and permissions are a fixed, compile-time enumerable set; the
// role-to-permission table below is built once and never mutated at runtime.
package permission

// Permission is a flat "resource:action" tag.
type Permission string

const (
	MembersCreate Permission = "members:create"
	MembersRead   Permission = "members:read"
	MembersUpdate Permission = "members:update"
	MembersDelete Permission = "members:delete"

	MembershipsCreate  Permission = "memberships:create"
	MembershipsRead    Permission = "memberships:read"
	MembershipsCancel  Permission = "memberships:cancel"
	MembershipsDelete  Permission = "memberships:delete"
	MembershipsRestore Permission = "memberships:restore"

	PlansCreate Permission = "plans:create"
	PlansRead   Permission = "plans:read"
	PlansUpdate Permission = "plans:update"
	PlansDelete Permission = "plans:delete"

	ProductsCreate Permission = "products:create"
	ProductsRead   Permission = "products:read"
	ProductsUpdate Permission = "products:update"
	ProductsDelete Permission = "products:delete"

	AttendanceCreate Permission = "attendance:create"
	AttendanceRead   Permission = "attendance:read"

	AnnouncementsCreate Permission = "announcements:create"
	AnnouncementsRead   Permission = "announcements:read"
	AnnouncementsDelete Permission = "announcements:delete"

	StaffCreate Permission = "staff:create"
	StaffRead   Permission = "staff:read"
	StaffUpdate Permission = "staff:update"
	StaffDelete Permission = "staff:delete"

	OrganizationsCreate  Permission = "organizations:create"
	OrganizationsRead    Permission = "organizations:read"
	OrganizationsUpdate  Permission = "organizations:update"
	OrganizationsDelete  Permission = "organizations:delete"
	OrganizationsBilling Permission = "organizations:billing"

	SystemManage Permission = "system:manage"
)

func (p Permission) String() string {
	return string(p)
}

// AllPermissions returns the full permission set.
func AllPermissions() []Permission {
	return []Permission{
		MembersCreate, MembersRead, MembersUpdate, MembersDelete,
		MembershipsCreate, MembershipsRead, MembershipsCancel, MembershipsDelete, MembershipsRestore,
		PlansCreate, PlansRead, PlansUpdate, PlansDelete,
		ProductsCreate, ProductsRead, ProductsUpdate, ProductsDelete,
		AttendanceCreate, AttendanceRead,
		AnnouncementsCreate, AnnouncementsRead, AnnouncementsDelete,
		StaffCreate, StaffRead, StaffUpdate, StaffDelete,
		OrganizationsCreate, OrganizationsRead, OrganizationsUpdate, OrganizationsDelete, OrganizationsBilling,
		SystemManage,
	}
}

// rolePermissions is the static role-to-permission table. GOD maps to the
// full set; every other role maps to a strict subset.
var rolePermissions = map[Role][]Permission{
	RoleGod: AllPermissions(),
	RoleOwner: {
		MembersCreate, MembersRead, MembersUpdate, MembersDelete,
		MembershipsCreate, MembershipsRead, MembershipsCancel, MembershipsDelete, MembershipsRestore,
		PlansCreate, PlansRead, PlansUpdate, PlansDelete,
		ProductsCreate, ProductsRead, ProductsUpdate, ProductsDelete,
		AttendanceCreate, AttendanceRead,
		AnnouncementsCreate, AnnouncementsRead, AnnouncementsDelete,
		StaffCreate, StaffRead, StaffUpdate, StaffDelete,
		OrganizationsRead, OrganizationsUpdate, OrganizationsBilling,
	},
	RoleAdmin: {
		MembersCreate, MembersRead, MembersUpdate, MembersDelete,
		MembershipsCreate, MembershipsRead, MembershipsCancel, MembershipsDelete, MembershipsRestore,
		PlansCreate, PlansRead, PlansUpdate, PlansDelete,
		ProductsCreate, ProductsRead, ProductsUpdate, ProductsDelete,
		AttendanceCreate, AttendanceRead,
		AnnouncementsCreate, AnnouncementsRead, AnnouncementsDelete,
		StaffRead,
		OrganizationsRead,
	},
	RoleStaff: {
		MembersCreate, MembersRead, MembersUpdate,
		MembershipsCreate, MembershipsRead,
		PlansRead,
		ProductsRead,
		AttendanceCreate, AttendanceRead,
		AnnouncementsRead,
	},
	RoleTrainer: {
		MembersRead,
		PlansRead,
		AttendanceCreate, AttendanceRead,
		AnnouncementsRead,
	},
}

// PermissionsForRole returns the permission set for a role. Unknown roles get
// an empty set.
func PermissionsForRole(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// RoleHasPermission reports whether the static table grants action to role.
func RoleHasPermission(role Role, action Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == action {
			return true
		}
	}
	return false
}
