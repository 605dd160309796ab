package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store/drivers/sqlite"
	"github.com/opsdeskhq/opsdesk-access/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func grantRole(t *testing.T, st store.Store, userID string, role domain.Role) {
	t.Helper()
	require.NoError(t, st.Assignments().Create(context.Background(), domain.RoleAssignment{
		ID:        idx.New().String(),
		UserID:    userID,
		Role:      role,
		GrantedBy: "test",
		CreatedAt: time.Now().UTC(),
	}))
}

// scriptedAssignments returns one queued role lookup per call, so tests can
// observe exactly how many lookups the resolver performs.
type scriptedAssignments struct {
	store.Assignments

	results []scriptedResult
	calls   int
}

type scriptedResult struct {
	roles []domain.Role
	err   error
}

func (s *scriptedAssignments) ListRolesForUser(ctx context.Context, userID string) ([]domain.Role, error) {
	res := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return res.roles, res.err
}

type stubStore struct {
	store.Store

	assignments *scriptedAssignments
}

func (s *stubStore) Assignments() store.Assignments { return s.assignments }

func fastResolver(st store.Store) *ResolverService {
	return &ResolverService{
		Store: st,
		Config: ResolverConfig{
			MaxAttempts: 3,
			RetryDelay:  time.Millisecond,
		},
	}
}

func TestResolvePrimaryRoleSingleRole(t *testing.T) {
	st := newTestStore(t)
	grantRole(t, st, "u1", domain.RoleHRManager)

	role, ok, err := fastResolver(st).ResolvePrimaryRole(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.RoleHRManager, role)
}

func TestResolvePrimaryRoleIsLexicallyFirst(t *testing.T) {
	st := newTestStore(t)
	grantRole(t, st, "u1", domain.RoleSalesManager)
	grantRole(t, st, "u1", domain.RoleArchitect)
	grantRole(t, st, "u1", domain.RoleExecutive)

	// "architect" < "executive" < "sales_manager"
	role, ok, err := fastResolver(st).ResolvePrimaryRole(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.RoleArchitect, role)
}

func TestResolvePrimaryRoleExhaustsRetryBudgetOnEmpty(t *testing.T) {
	assignments := &scriptedAssignments{results: []scriptedResult{{roles: nil}}}
	svc := fastResolver(&stubStore{assignments: assignments})

	role, ok, err := svc.ResolvePrimaryRole(context.Background(), "u1")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, role)
	require.Equal(t, 3, assignments.calls)
}

func TestResolvePrimaryRoleStopsRetryingOnceRolesAppear(t *testing.T) {
	assignments := &scriptedAssignments{results: []scriptedResult{
		{roles: nil},
		{roles: []domain.Role{domain.RoleEmployee}},
	}}
	svc := fastResolver(&stubStore{assignments: assignments})

	role, ok, err := svc.ResolvePrimaryRole(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.RoleEmployee, role)
	require.Equal(t, 2, assignments.calls)
}

func TestResolvePrimaryRoleNeverRetriesErrors(t *testing.T) {
	boom := errors.New("connection reset")
	assignments := &scriptedAssignments{results: []scriptedResult{{err: boom}}}
	svc := fastResolver(&stubStore{assignments: assignments})

	_, ok, err := svc.ResolvePrimaryRole(context.Background(), "u1")
	require.ErrorIs(t, err, boom)
	require.False(t, ok)
	require.Equal(t, 1, assignments.calls, "storage errors must surface immediately, not retry")
}

func TestResolvePrimaryRoleHonoursContextCancellation(t *testing.T) {
	assignments := &scriptedAssignments{results: []scriptedResult{{roles: nil}}}
	svc := &ResolverService{
		Store:  &stubStore{assignments: assignments},
		Config: ResolverConfig{MaxAttempts: 3, RetryDelay: time.Minute},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.ResolvePrimaryRole(ctx, "u1")
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, assignments.calls)
}

func TestResolveRoute(t *testing.T) {
	t.Run("maps primary role to its dashboard", func(t *testing.T) {
		st := newTestStore(t)
		grantRole(t, st, "u1", domain.RoleFinanceManager)

		role, route, err := fastResolver(st).ResolveRoute(context.Background(), "u1")
		require.NoError(t, err)
		require.Equal(t, domain.RoleFinanceManager, role)
		require.Equal(t, "/finance-dashboard", route)
	})

	t.Run("no roles falls back to default dashboard", func(t *testing.T) {
		st := newTestStore(t)

		role, route, err := fastResolver(st).ResolveRoute(context.Background(), "nobody")
		require.NoError(t, err)
		require.Empty(t, role)
		require.Equal(t, domain.FallbackRoute, route)
	})

	t.Run("storage errors propagate", func(t *testing.T) {
		boom := errors.New("disk gone")
		assignments := &scriptedAssignments{results: []scriptedResult{{err: boom}}}

		_, _, err := fastResolver(&stubStore{assignments: assignments}).ResolveRoute(context.Background(), "u1")
		require.ErrorIs(t, err, boom)
	})
}

func TestGetRolesSortsLexically(t *testing.T) {
	st := newTestStore(t)
	grantRole(t, st, "u1", domain.RoleHRManager)
	grantRole(t, st, "u1", domain.RoleAdmin)

	roles, err := fastResolver(st).GetRoles(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, []domain.Role{domain.RoleAdmin, domain.RoleHRManager}, roles)
}
