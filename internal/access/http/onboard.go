package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/opsdeskhq/opsdesk-access/pkg/httpx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

type OnboardHandler struct {
	OnboardingService *service.OnboardingService
}

// ServeHTTP godoc
//
//	@Summary		Signup Onboarding Endpoint
//	@Description	Assign the default role to a freshly created identity and record its profile. Idempotent:
//	@Description	if the user already holds any role the call reports already-assigned and writes nothing.
//	@Description	Authenticated with the service key, never with an end-user session.
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accesssdk.OnboardRequest	true	"User identity, profile fields and optional preferred role"
//	@Success		200		{object}	accesssdk.OnboardResponse	"role, already_assigned"
//	@Failure		400		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Security		ServiceKeyAuth
//	@Router			/v1/onboard [post].
func (h *OnboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var body accesssdk.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	result, err := h.OnboardingService.Onboard(ctx, body.UserID, body.Email, body.DisplayName, body.PreferredRole)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOnboardRequest) {
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "user_id and email are required",
			})
			return
		}
		log.Error("onboarding failed", "user_id", body.UserID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Unable to complete onboarding",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accesssdk.OnboardResponse{
		Role:            string(result.Role),
		AlreadyAssigned: result.AlreadyAssigned,
	})
}
