package access_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/stretchr/testify/require"
)

// TestUpgradeRequestLifecycle walks the full journey: a fresh signup lands on
// the employee dashboard, is denied the HR page, requests the hr_manager
// role, an admin approves it, and the guard then allows the page.
func TestUpgradeRequestLifecycle(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	// Signup bootstrap, authenticated by service key.
	onboarded, err := env.serviceClient().Onboard(ctx, onboardAlice())
	require.NoError(t, err)
	require.Equal(t, "employee", onboarded.Role)
	require.False(t, onboarded.AlreadyAssigned)

	alice := env.sessionClient(t, "alice")

	// Fresh signup lands on the employee dashboard.
	route, err := alice.Route(ctx)
	require.NoError(t, err)
	require.Equal(t, "employee", route.Role)
	require.Equal(t, "/employee-dashboard", route.Route)

	// The HR page is denied with the fallback redirect and a visible notice,
	// and without leaking what alice does hold.
	guard, err := alice.Guard(ctx, "hr_manager")
	require.NoError(t, err)
	require.False(t, guard.Allowed)
	require.Equal(t, "/employee-dashboard", guard.Redirect)
	require.NotEmpty(t, guard.Message)
	require.NotContains(t, guard.Message, "employee")

	// Alice requests the hr_manager role.
	submitted, err := alice.SubmitRequest(ctx, "hr_manager", "covering HR duties during parental leave")
	require.NoError(t, err)
	require.Equal(t, "pending", submitted.Status)

	// A second request is refused while the first is pending.
	_, err = alice.SubmitRequest(ctx, "architect", "and this one too")
	requireAPIError(t, err, http.StatusConflict, "request_already_pending")

	// An admin reviews the queue and sees alice's profile on the request.
	env.grantAdmin(t, "nadia")
	admin := env.sessionClient(t, "nadia")

	pending, err := admin.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending.Requests, 1)
	require.Equal(t, submitted.ID, pending.Requests[0].ID)
	require.Equal(t, "Alice", pending.Requests[0].RequesterName)
	require.Equal(t, "alice@example.com", pending.Requests[0].RequesterEmail)

	reviewed, err := admin.Review(ctx, submitted.ID, "approve")
	require.NoError(t, err)
	require.Equal(t, "approved", reviewed.Status)
	require.Equal(t, "nadia", reviewed.ReviewedBy)

	// The guard now allows the HR page.
	guard, err = alice.Guard(ctx, "hr_manager")
	require.NoError(t, err)
	require.True(t, guard.Allowed)

	// Primary role stays deterministic: employee sorts before hr_manager.
	route, err = alice.Route(ctx)
	require.NoError(t, err)
	require.Equal(t, "employee", route.Role)

	// Re-reviewing the now-terminal request is refused.
	_, err = admin.Review(ctx, submitted.ID, "reject")
	requireAPIError(t, err, http.StatusConflict, "request_not_pending")

	// Alice sees the full history of her own requests.
	mine, err := alice.ListMyRequests(ctx)
	require.NoError(t, err)
	require.Len(t, mine.Requests, 1)
	require.Equal(t, "approved", mine.Requests[0].Status)
}

func TestOnboardingIsIdempotentOverHTTP(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	first, err := env.serviceClient().Onboard(ctx, onboardAlice())
	require.NoError(t, err)
	require.False(t, first.AlreadyAssigned)

	second, err := env.serviceClient().Onboard(ctx, onboardAlice())
	require.NoError(t, err)
	require.True(t, second.AlreadyAssigned)
	require.Equal(t, "employee", second.Role)
}

func TestOnboardingRequiresServiceKey(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	// A user session must not reach the onboarding endpoint.
	alice := env.sessionClient(t, "alice")
	_, err := alice.Onboard(ctx, onboardAlice())
	requireAPIError(t, err, http.StatusUnauthorized, "unauthorized")

	// Neither does a wrong key.
	bad := env.serviceClient()
	bad.ServiceKey = "wrong"
	_, err = bad.Onboard(ctx, onboardAlice())
	requireAPIError(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestGuardRequiresSession(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	// No identity: denied before any role lookup.
	anon := accesssdk.New(env.Server.URL)
	_, err := anon.Guard(ctx, "admin")
	requireAPIError(t, err, http.StatusUnauthorized, "unauthorized")
}

func TestAdminEndpointsAreRoleGated(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	_, err := env.serviceClient().Onboard(ctx, onboardAlice())
	require.NoError(t, err)

	alice := env.sessionClient(t, "alice")

	_, err = alice.ListPending(ctx)
	requireAPIError(t, err, http.StatusForbidden, "access_denied")

	_, err = alice.GrantRole(ctx, "alice", "admin")
	requireAPIError(t, err, http.StatusForbidden, "access_denied")

	err = alice.RevokeRole(ctx, "bob", "employee")
	requireAPIError(t, err, http.StatusForbidden, "access_denied")
}

func TestDirectGrantAndRevoke(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	_, err := env.serviceClient().Onboard(ctx, onboardAlice())
	require.NoError(t, err)

	env.grantAdmin(t, "nadia")
	admin := env.sessionClient(t, "nadia")

	granted, err := admin.GrantRole(ctx, "alice", "finance_manager")
	require.NoError(t, err)
	require.Equal(t, "finance_manager", granted.Role)
	require.Equal(t, "nadia", granted.GrantedBy)

	// Granting again is a conflict.
	_, err = admin.GrantRole(ctx, "alice", "finance_manager")
	requireAPIError(t, err, http.StatusConflict, "invalid_request")

	roles, err := admin.ListUserRoles(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, roles.Assignments, 2)

	require.NoError(t, admin.RevokeRole(ctx, "alice", "finance_manager"))

	// Revocation is visible on the next guard check.
	alice := env.sessionClient(t, "alice")
	guard, err := alice.Guard(ctx, "finance_manager")
	require.NoError(t, err)
	require.False(t, guard.Allowed)
}

func TestRoleCatalogue(t *testing.T) {
	ctx := context.Background()
	env := setupServer(t)

	catalogue, err := env.serviceClient().ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, catalogue.Roles, 8)
	require.Equal(t, "/employee-dashboard", catalogue.Fallback)

	seen := map[string]bool{}
	for _, r := range catalogue.Roles {
		seen[r.Role] = true
		require.NotEmpty(t, r.Route)
	}
	require.True(t, seen["admin"])
	require.True(t, seen["hr_manager"])
	require.True(t, seen["employee"])
}
