package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/opsdeskhq/opsdesk-access/pkg/jwtx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

// AuthnMiddleware verifies the session token minted by the identity provider
// and injects the subject into the request context. A missing or invalid
// token is an identity question, not a role question: the response carries
// the login redirect and no store query ever runs.
func AuthnMiddleware(v jwtx.Verifier, issuer, loginRedirect string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeAuthnError(w, "missing bearer token", loginRedirect)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("session token verify failed", "err", err)
				writeAuthnError(w, "session token verification failed", loginRedirect)
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeAuthnError(w, "session expired", loginRedirect)
				return
			}
			if err := claims.ValidateIssuer(issuer); err != nil {
				writeAuthnError(w, "unexpected token issuer", loginRedirect)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthnError(w http.ResponseWriter, desc, loginRedirect string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": desc,
		"redirect":          loginRedirect,
	})
}
