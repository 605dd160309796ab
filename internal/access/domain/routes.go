package domain

const (
	// FallbackRoute is where a user lands when they hold no role, an
	// unrecognized role, or fail a guard check.
	FallbackRoute = "/employee-dashboard"

	// LoginRoute is where an unauthenticated request is sent. This is an
	// identity question, not a role question, so it never touches the store.
	LoginRoute = "/login"
)

// RouteForRole maps a role to its canonical dashboard path. Total over the
// role enumeration; anything outside the closed set lands on the fallback.
func RouteForRole(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin-dashboard"
	case RoleArchitect:
		return "/architect-dashboard"
	case RoleEmployee:
		return "/employee-dashboard"
	case RoleExecutive:
		return "/executive-dashboard"
	case RoleFinanceManager:
		return "/finance-dashboard"
	case RoleHRManager:
		return "/hr-dashboard"
	case RoleProcurementManager:
		return "/procurement-dashboard"
	case RoleSalesManager:
		return "/sales-dashboard"
	default:
		return FallbackRoute
	}
}
