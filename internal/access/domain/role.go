package domain

// Role is a capability grant mapping a user to one dashboard surface. The set
// is closed: every role the platform knows about is listed here, and anything
// else is rejected at the boundary rather than carried around as a free
// string.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleArchitect          Role = "architect"
	RoleEmployee           Role = "employee"
	RoleExecutive          Role = "executive"
	RoleFinanceManager     Role = "finance_manager"
	RoleHRManager          Role = "hr_manager"
	RoleProcurementManager Role = "procurement_manager"
	RoleSalesManager       Role = "sales_manager"
)

// DefaultRole is assigned at signup when no recognized preference was supplied.
const DefaultRole = RoleEmployee

// AllRoles returns the closed role set in lexical order.
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleArchitect,
		RoleEmployee,
		RoleExecutive,
		RoleFinanceManager,
		RoleHRManager,
		RoleProcurementManager,
		RoleSalesManager,
	}
}

// ParseRole maps a label to a Role, reporting whether it is recognized.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleArchitect, RoleEmployee, RoleExecutive,
		RoleFinanceManager, RoleHRManager, RoleProcurementManager, RoleSalesManager:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
