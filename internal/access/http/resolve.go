package http

import (
	"net/http"

	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/opsdeskhq/opsdesk-access/pkg/httpx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

type RouteHandler struct {
	ResolverService *service.ResolverService
}

// ServeHTTP godoc
//
//	@Summary		Landing Route Resolution Endpoint
//	@Description	Resolve the authenticated user's primary role and the dashboard route to land on after login.
//	@Description	A user with no roles receives the fallback dashboard route with an empty role.
//	@Tags			Resolver
//	@Produce		json
//	@Success		200	{object}	accesssdk.RouteResponse	"role, route"
//	@Failure		401	{object}	accesssdk.ErrorResponse	"error, error_description, redirect"
//	@Failure		500	{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/route [get].
func (h *RouteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)

	role, route, err := h.ResolverService.ResolveRoute(ctx, userID)
	if err != nil {
		log.Error("route resolution failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Unable to resolve your dashboard. Please try again.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accesssdk.RouteResponse{
		Role:  string(role),
		Route: route,
	})
}
