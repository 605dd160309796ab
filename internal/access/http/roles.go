package http

import (
	"net/http"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/pkg/accesssdk"
	"github.com/opsdeskhq/opsdesk-access/pkg/httpx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

type RolesHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Role Catalogue Endpoint
//	@Description	List the closed set of recognized roles together with their dashboard routes.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	accesssdk.ListRolesResponse	"roles, fallback"
//	@Router			/v1/roles [get].
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roles := domain.AllRoles()
	out := accesssdk.ListRolesResponse{
		Roles:    make([]accesssdk.RoleInfo, 0, len(roles)),
		Fallback: domain.FallbackRoute,
	}
	for _, role := range roles {
		out.Roles = append(out.Roles, accesssdk.RoleInfo{
			Role:  string(role),
			Route: domain.RouteForRole(role),
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type MyRolesHandler struct {
	AssignmentsService *service.AssignmentsService
}

// ServeHTTP godoc
//
//	@Summary		Own Role Assignments Endpoint
//	@Description	List the authenticated user's role assignments, newest first.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{object}	accesssdk.ListAssignmentsResponse	"assignments"
//	@Failure		401	{object}	accesssdk.ErrorResponse				"error, error_description, redirect"
//	@Failure		500	{object}	accesssdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me/roles [get].
func (h *MyRolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)

	assignments, err := h.AssignmentsService.ListForUser(ctx, userID)
	if err != nil {
		log.Error("failed to list own roles", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Unable to list your roles. Please try again.",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accesssdk.ListAssignmentsResponse{
		Assignments: toAssignmentInfos(assignments),
	})
}

func toAssignmentInfos(assignments []domain.RoleAssignment) []accesssdk.AssignmentInfo {
	out := make([]accesssdk.AssignmentInfo, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, accesssdk.AssignmentInfo{
			ID:        a.ID,
			UserID:    a.UserID,
			Role:      string(a.Role),
			GrantedBy: a.GrantedBy,
			CreatedAt: a.CreatedAt.Unix(),
		})
	}
	return out
}
