package service

import (
	"context"
	"testing"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/stretchr/testify/require"
)

func TestOnboardAssignsDefaultRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OnboardingService{Store: st}

	result, err := svc.Onboard(ctx, "u1", "alice@example.com", "Alice", "")
	require.NoError(t, err)
	require.Equal(t, domain.DefaultRole, result.Role)
	require.False(t, result.AlreadyAssigned)

	assignments, err := st.Assignments().ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, domain.DefaultRole, assignments[0].Role)
	require.Equal(t, domain.GrantedBySignup, assignments[0].GrantedBy)

	profile, err := st.Profiles().GetByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", profile.Email)
	require.Equal(t, "Alice", profile.DisplayName)
}

func TestOnboardHonoursPreferredRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OnboardingService{Store: st}

	result, err := svc.Onboard(ctx, "u1", "bob@example.com", "Bob", "sales_manager")
	require.NoError(t, err)
	require.Equal(t, domain.RoleSalesManager, result.Role)
}

func TestOnboardFallsBackOnUnrecognizedHint(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OnboardingService{Store: st}

	result, err := svc.Onboard(ctx, "u1", "eve@example.com", "Eve", "overlord")
	require.NoError(t, err)
	require.Equal(t, domain.DefaultRole, result.Role)
}

func TestOnboardIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OnboardingService{Store: st}

	first, err := svc.Onboard(ctx, "u1", "alice@example.com", "Alice", "")
	require.NoError(t, err)
	require.False(t, first.AlreadyAssigned)

	second, err := svc.Onboard(ctx, "u1", "alice@example.com", "Alice", "hr_manager")
	require.NoError(t, err)
	require.True(t, second.AlreadyAssigned)
	require.Equal(t, domain.DefaultRole, second.Role, "a repeat call reports the existing role, not the hint")

	count, err := st.Assignments().CountForUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestOnboardSkipsUsersWithExistingRoles(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OnboardingService{Store: st}

	grantRole(t, st, "u1", domain.RoleAdmin)

	result, err := svc.Onboard(ctx, "u1", "root@example.com", "Root", "")
	require.NoError(t, err)
	require.True(t, result.AlreadyAssigned)
	require.Equal(t, domain.RoleAdmin, result.Role)

	count, err := st.Assignments().CountForUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestOnboardValidatesInput(t *testing.T) {
	ctx := context.Background()
	svc := &OnboardingService{Store: newTestStore(t)}

	_, err := svc.Onboard(ctx, "", "alice@example.com", "Alice", "")
	require.ErrorIs(t, err, ErrInvalidOnboardRequest)

	_, err = svc.Onboard(ctx, "u1", "  ", "Alice", "")
	require.ErrorIs(t, err, ErrInvalidOnboardRequest)
}
