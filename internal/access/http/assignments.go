package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/opsdeskhq/opsdesk-access/pkg/httpx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

type AssignmentsHandler struct {
	AssignmentsService *service.AssignmentsService
}

// HandleList godoc
//
//	@Summary		User Role Assignments Endpoint
//	@Description	List a user's role assignments, newest first. Admin only.
//	@Tags			Assignments
//	@Produce		json
//	@Param			id	path		string								true	"User ID"
//	@Success		200	{object}	accesssdk.ListAssignmentsResponse	"assignments"
//	@Failure		401	{object}	accesssdk.ErrorResponse				"error, error_description, redirect"
//	@Failure		403	{object}	accesssdk.ErrorResponse				"error, error_description"
//	@Failure		500	{object}	accesssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/roles [get].
func (h *AssignmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("id")

	assignments, err := h.AssignmentsService.ListForUser(ctx, userID)
	if err != nil {
		log.Error("failed to list user roles", "user_id", userID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Unable to list roles. Please try again.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accesssdk.ListAssignmentsResponse{
		Assignments: toAssignmentInfos(assignments),
	})
}

// HandleGrant godoc
//
//	@Summary		Direct Role Grant Endpoint
//	@Description	Grant a role to a user directly, outside the upgrade request workflow. Admin only.
//	@Description	Granting an already-held role is a conflict.
//	@Tags			Assignments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		accesssdk.GrantRoleRequest	true	"Role to grant"
//	@Success		201		{object}	accesssdk.AssignmentInfo	"id, user_id, role, granted_by, created_at"
//	@Failure		400		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	accesssdk.ErrorResponse		"error, error_description, redirect"
//	@Failure		403		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	accesssdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/roles [post].
func (h *AssignmentsHandler) HandleGrant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var body accesssdk.GrantRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID := r.PathValue("id")
	grantedBy := httpx.UserIDFromContext(ctx)

	a, err := h.AssignmentsService.Grant(ctx, userID, domain.Role(body.Role), grantedBy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Please select a valid role.",
			})
		case errors.Is(err, service.ErrRoleAlreadyHeld):
			httpx.WriteJSON(w, http.StatusConflict, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "The user already has this role.",
			})
		default:
			log.Error("failed to grant role", "user_id", userID, "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Unable to grant the role. Please try again.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accesssdk.AssignmentInfo{
		ID:        a.ID,
		UserID:    a.UserID,
		Role:      string(a.Role),
		GrantedBy: a.GrantedBy,
		CreatedAt: a.CreatedAt.Unix(),
	})
}

// HandleRevoke godoc
//
//	@Summary		Role Revocation Endpoint
//	@Description	Remove one role from a user. The next page load reflects the revocation because every
//	@Description	guard check reads live assignments. Admin only.
//	@Tags			Assignments
//	@Produce		json
//	@Param			id		path	string	true	"User ID"
//	@Param			role	path	string	true	"Role label"
//	@Success		204		"revoked"
//	@Failure		400		{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	accesssdk.ErrorResponse	"error, error_description, redirect"
//	@Failure		403		{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	accesssdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/roles/{role} [delete].
func (h *AssignmentsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("id")
	role := domain.Role(r.PathValue("role"))
	revokedBy := httpx.UserIDFromContext(ctx)

	if err := h.AssignmentsService.Revoke(ctx, userID, role, revokedBy); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Please select a valid role.",
			})
		case errors.Is(err, service.ErrAssignmentNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accesssdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "The user does not have this role.",
			})
		default:
			log.Error("failed to revoke role", "user_id", userID, "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Unable to revoke the role. Please try again.",
			})
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
