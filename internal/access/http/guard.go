package http

import (
	"net/http"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/opsdeskhq/opsdesk-access/pkg/httpx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

type GuardHandler struct {
	GuardService *service.GuardService
}

// ServeHTTP godoc
//
//	@Summary		Page Guard Endpoint
//	@Description	Check whether the authenticated user may view the dashboard page protected by the given role.
//	@Description	A denial includes the fallback redirect and a visible notice; it never reveals which roles the user holds.
//	@Tags			Guard
//	@Produce		json
//	@Param			role	path		string					true	"Required role label"
//	@Success		200		{object}	accesssdk.GuardResponse	"allowed, redirect, message"
//	@Failure		401		{object}	accesssdk.ErrorResponse	"error, error_description, redirect"
//	@Failure		500		{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/guard/{role} [get].
func (h *GuardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)
	required := domain.Role(r.PathValue("role"))

	decision, err := h.GuardService.CheckAccess(ctx, userID, required)
	if err != nil {
		log.Error("guard check failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Unable to verify access. Please try again.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accesssdk.GuardResponse{
		Allowed:  decision.Allowed,
		Redirect: decision.Redirect,
		Message:  decision.Message,
	})
}
