package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opsdeskhq/opsdesk-access/pkg/cryptox"
	"github.com/opsdeskhq/opsdesk-access/pkg/httpx"
	"github.com/opsdeskhq/opsdesk-access/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func okHandler(sawUser *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sawUser != nil {
			*sawUser = httpx.UserIDFromContext(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func mintToken(t *testing.T, secret, subject, issuer string, ttl time.Duration) string {
	t.Helper()
	signer := jwtx.NewHS256([]byte(secret))
	raw, err := signer.Sign(jwtx.NewSessionClaims(subject, issuer, "", "", ttl, time.Now()))
	require.NoError(t, err)
	return raw
}

func TestAuthnMiddleware(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	verifier := jwtx.NewHS256([]byte(secret))

	var sawUser string
	handler := httpx.Chain(okHandler(&sawUser),
		httpx.AuthnMiddleware(verifier, "idp", "/login"),
	)

	t.Run("missing token gets login redirect", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Equal(t, "unauthorized", body["error"])
		require.Equal(t, "/login", body["redirect"])
	})

	t.Run("valid token passes and exposes the subject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, secret, "user-1", "idp", time.Hour))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", sawUser)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, secret, "user-1", "idp", -time.Hour))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, secret, "user-1", "someone-else", time.Hour))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "other-secret", "user-1", "idp", time.Hour))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func withUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), httpx.CtxKeyUserID, userID)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	t.Run("allows when the checker says yes", func(t *testing.T) {
		mw := httpx.RequireRole(func(ctx context.Context, userID, role string) (bool, error) {
			require.Equal(t, "user-1", userID)
			require.Equal(t, "admin", role)
			return true, nil
		}, "admin")

		rec := httptest.NewRecorder()
		mw(okHandler(nil)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), "user-1"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("403 when the checker says no", func(t *testing.T) {
		mw := httpx.RequireRole(func(ctx context.Context, userID, role string) (bool, error) {
			return false, nil
		}, "admin")

		rec := httptest.NewRecorder()
		mw(okHandler(nil)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), "user-1"))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("500 when the checker fails", func(t *testing.T) {
		mw := httpx.RequireRole(func(ctx context.Context, userID, role string) (bool, error) {
			return false, errors.New("db down")
		}, "admin")

		rec := httptest.NewRecorder()
		mw(okHandler(nil)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), "user-1"))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("401 without an authenticated user", func(t *testing.T) {
		mw := httpx.RequireRole(func(ctx context.Context, userID, role string) (bool, error) {
			t.Fatal("checker must not run without a user")
			return false, nil
		}, "admin")

		rec := httptest.NewRecorder()
		mw(okHandler(nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireServiceKey(t *testing.T) {
	t.Parallel()

	key, err := cryptox.GenerateServiceKey()
	require.NoError(t, err)
	hash, err := cryptox.HashServiceKey(key)
	require.NoError(t, err)

	handler := httpx.RequireServiceKey(hash)(okHandler(nil))

	t.Run("valid key passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(httpx.ServiceKeyHeader, key)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set(httpx.ServiceKeyHeader, "not-the-key")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	handler := httpx.RateLimitByIP(cfg)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different client is unaffected.
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	require.Equal(t, http.StatusOK, rec.Code)
}
