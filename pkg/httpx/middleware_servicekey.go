package httpx

import (
	"net/http"

	"github.com/opsdeskhq/opsdesk-access/pkg/cryptox"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

// ServiceKeyHeader carries the elevated-caller credential for machine-to-
// machine endpoints such as signup onboarding.
const ServiceKeyHeader = "X-Service-Key"

// RequireServiceKey gates an endpoint behind a pre-shared service key whose
// argon2id hash is held in configuration. End-user sessions never pass this
// check, which is what keeps the onboarding path elevated: a user cannot
// write their own role assignment.
func RequireServiceKey(keyHash string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := r.Header.Get(ServiceKeyHeader)
			if key == "" {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":             "unauthorized",
					"error_description": "service key required",
				})
				return
			}

			ok, err := cryptox.VerifyServiceKey(key, keyHash)
			if err != nil {
				log.Error("service key hash is malformed", "err", err)
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error":             "server_error",
					"error_description": "service key verification unavailable",
				})
				return
			}
			if !ok {
				log.Warn("rejected invalid service key")
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":             "unauthorized",
					"error_description": "invalid service key",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
