package httpx

import (
	"context"
	"net/http"

	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

// RoleChecker answers whether a user currently holds a role. Implementations
// query live state per request; role membership is never read from token
// claims, so a revocation takes effect on the next request.
type RoleChecker func(ctx context.Context, userID, role string) (bool, error)

// RequireRole gates an endpoint on a live role check. It must run after
// AuthnMiddleware so the user ID is present in the context. A failed check is
// a 403 with the generic denial body; a checker error is a 500 and never a
// denial.
func RequireRole(check RoleChecker, role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID := UserIDFromContext(ctx)
			if userID == "" {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":             "unauthorized",
					"error_description": "Authentication required",
				})
				return
			}

			ok, err := check(ctx, userID, role)
			if err != nil {
				log.Error("role check failed", "role", role, "err", err)
				WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error":             "server_error",
					"error_description": "Unable to verify permissions",
				})
				return
			}
			if !ok {
				log.Info("role gate denied", "user_id", userID, "role", role)
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "access_denied",
					"error_description": "You do not have permission to perform this action.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
