package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	t.Run("recognizes every role in the set", func(t *testing.T) {
		for _, r := range AllRoles() {
			parsed, ok := ParseRole(string(r))
			require.True(t, ok)
			require.Equal(t, r, parsed)
		}
	})

	t.Run("rejects unknown labels", func(t *testing.T) {
		for _, label := range []string{"", "superuser", "Admin", "employee ", "hr-manager"} {
			_, ok := ParseRole(label)
			require.False(t, ok, "label %q should not parse", label)
		}
	})
}

func TestRouteForRole(t *testing.T) {
	t.Parallel()

	t.Run("every role has a distinct dashboard route", func(t *testing.T) {
		seen := map[string]Role{}
		for _, r := range AllRoles() {
			route := RouteForRole(r)
			require.NotEmpty(t, route)
			prev, dup := seen[route]
			require.False(t, dup, "roles %s and %s share route %s", prev, r, route)
			seen[route] = r
		}
	})

	t.Run("known mappings", func(t *testing.T) {
		require.Equal(t, "/admin-dashboard", RouteForRole(RoleAdmin))
		require.Equal(t, "/hr-dashboard", RouteForRole(RoleHRManager))
		require.Equal(t, "/employee-dashboard", RouteForRole(RoleEmployee))
	})

	t.Run("unknown role falls back", func(t *testing.T) {
		require.Equal(t, FallbackRoute, RouteForRole(Role("superuser")))
		require.Equal(t, FallbackRoute, RouteForRole(Role("")))
	})
}

func TestRequestStatusTerminal(t *testing.T) {
	t.Parallel()

	require.False(t, RequestPending.Terminal())
	require.True(t, RequestApproved.Terminal())
	require.True(t, RequestRejected.Terminal())
}
