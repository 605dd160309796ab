package access_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	env := setupServer(t)

	t.Run("livez", func(t *testing.T) {
		resp, err := http.Get(env.Server.URL + "/livez")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body accesssdk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "ok", body.Status)
		require.Equal(t, "e2e", body.Version)
	})

	t.Run("readyz reports the database check", func(t *testing.T) {
		resp, err := http.Get(env.Server.URL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body accesssdk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "ok", body.Status)
		require.NotNil(t, body.Checks)
		require.Equal(t, "ok", body.Checks.Database)
	})

	t.Run("readyz degrades when the database is gone", func(t *testing.T) {
		require.NoError(t, env.Store.Close())

		resp, err := http.Get(env.Server.URL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body accesssdk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "degraded", body.Status)
	})
}
