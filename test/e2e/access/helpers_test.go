package access_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	accesshttp "github.com/opsdeskhq/opsdesk-access/internal/access/http"
	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store/drivers/sqlite"
	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/opsdeskhq/opsdesk-access/pkg/cryptox"
	"github.com/opsdeskhq/opsdesk-access/pkg/idx"
	"github.com/opsdeskhq/opsdesk-access/pkg/jwtx"
	"github.com/stretchr/testify/require"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
)

/*
 * Common helpers for access service end-to-end tests. The full router runs
 * in-process against an in-memory database; requests go through the real
 * middleware chains via the typed SDK client.
 */

const (
	sessionSecret = "e2e-session-secret"
	sessionIssuer = "opsdesk-identity"
	serviceKey    = "e2e-service-key"
)

type testEnv struct {
	Server *httptest.Server
	Store  store.Store
	Signer *jwtx.HS256
}

// setupServer wires the router exactly as the application does and serves it
// from an httptest server.
func setupServer(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	keyHash, err := cryptox.HashServiceKey(serviceKey)
	require.NoError(t, err)

	signer := jwtx.NewHS256([]byte(sessionSecret))
	logger := slog.Default()

	router := accesshttp.NewRouter(signer, sessionIssuer, keyHash, "e2e", st, logger)
	router.ResolverService = &service.ResolverService{
		Store: st,
		Config: service.ResolverConfig{
			MaxAttempts: 3,
			RetryDelay:  time.Millisecond,
		},
	}
	router.GuardService = &service.GuardService{Store: st}
	router.UpgradeService = &service.UpgradeService{Store: st}
	router.OnboardingService = &service.OnboardingService{Store: st}
	router.AssignmentsService = &service.AssignmentsService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{Server: srv, Store: st, Signer: signer}
}

// sessionClient returns an SDK client authenticated as the given user.
func (e *testEnv) sessionClient(t *testing.T, userID string) *accesssdk.Client {
	t.Helper()

	raw, err := e.Signer.Sign(jwtx.NewSessionClaims(userID, sessionIssuer, userID+"@example.com", userID, time.Hour, time.Now()))
	require.NoError(t, err)

	c := accesssdk.New(e.Server.URL)
	c.SessionToken = raw
	return c
}

// serviceClient returns an SDK client carrying the onboarding service key.
func (e *testEnv) serviceClient() *accesssdk.Client {
	c := accesssdk.New(e.Server.URL)
	c.ServiceKey = serviceKey
	return c
}

// grantAdmin seeds an admin assignment directly, standing in for the
// platform's bootstrap provisioning.
func (e *testEnv) grantAdmin(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, e.Store.Assignments().Create(context.Background(), domain.RoleAssignment{
		ID:        idx.New().String(),
		UserID:    userID,
		Role:      domain.RoleAdmin,
		GrantedBy: "bootstrap",
		CreatedAt: time.Now().UTC(),
	}))
}

func onboardAlice() accesssdk.OnboardRequest {
	return accesssdk.OnboardRequest{
		UserID:      "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
	}
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *accesssdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
