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

type RequestsHandler struct {
	UpgradeService *service.UpgradeService
}

// HandleSubmit godoc
//
//	@Summary		Role Upgrade Request Submission Endpoint
//	@Description	Submit a request for an additional role with a justification. One pending request per user;
//	@Description	a new request is refused while another is outstanding.
//	@Tags			Upgrade Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		accesssdk.SubmitRequestRequest	true	"Upgrade request"
//	@Success		201		{object}	accesssdk.UpgradeRequestInfo	"id, role, reason, status, created_at"
//	@Failure		400		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	accesssdk.ErrorResponse			"error, error_description, redirect"
//	@Failure		409		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/requests [post].
func (h *RequestsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var body accesssdk.SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)

	req, err := h.UpgradeService.Submit(ctx, userID, domain.Role(body.Role), body.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Please select a valid role.",
			})
		case errors.Is(err, service.ErrReasonRequired):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Please provide a reason for your request.",
			})
		case errors.Is(err, service.ErrRoleAlreadyHeld):
			httpx.WriteJSON(w, http.StatusConflict, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "You already have this role.",
			})
		case errors.Is(err, service.ErrRequestAlreadyPending):
			httpx.WriteJSON(w, http.StatusConflict, accesssdk.ErrorResponse{
				Error:            "request_already_pending",
				ErrorDescription: "You already have a pending request. Please wait for it to be reviewed.",
			})
		default:
			log.Error("failed to submit upgrade request", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Unable to submit your request. Please try again.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRequestInfo(req))
}

// HandleListMine godoc
//
//	@Summary		Own Upgrade Requests Endpoint
//	@Description	List the authenticated user's upgrade requests, any status, newest first.
//	@Tags			Upgrade Requests
//	@Produce		json
//	@Success		200	{object}	accesssdk.ListRequestsResponse	"requests"
//	@Failure		401	{object}	accesssdk.ErrorResponse			"error, error_description, redirect"
//	@Failure		500	{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/requests [get].
func (h *RequestsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromContext(ctx)

	requests, err := h.UpgradeService.ListForUser(ctx, userID)
	if err != nil {
		log.Error("failed to list own upgrade requests", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Unable to list your requests. Please try again.",
		})
		return
	}

	out := accesssdk.ListRequestsResponse{
		Requests: make([]accesssdk.UpgradeRequestInfo, 0, len(requests)),
	}
	for _, req := range requests {
		out.Requests = append(out.Requests, toRequestInfo(req))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListPending godoc
//
//	@Summary		Pending Review Queue Endpoint
//	@Description	List every pending upgrade request system-wide, oldest first, enriched with requester
//	@Description	display name and email. Admin only.
//	@Tags			Upgrade Requests
//	@Produce		json
//	@Success		200	{object}	accesssdk.ListPendingResponse	"requests"
//	@Failure		401	{object}	accesssdk.ErrorResponse			"error, error_description, redirect"
//	@Failure		403	{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/requests/pending [get].
func (h *RequestsHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	pending, err := h.UpgradeService.ListPending(ctx)
	if err != nil {
		log.Error("failed to list pending upgrade requests", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Unable to load the review queue. Please try again.",
		})
		return
	}

	out := accesssdk.ListPendingResponse{
		Requests: make([]accesssdk.PendingRequestInfo, 0, len(pending)),
	}
	for _, p := range pending {
		out.Requests = append(out.Requests, accesssdk.PendingRequestInfo{
			UpgradeRequestInfo: toRequestInfo(p.RoleUpgradeRequest),
			RequesterName:      p.RequesterName,
			RequesterEmail:     p.RequesterEmail,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleReview godoc
//
//	@Summary		Upgrade Request Review Endpoint
//	@Description	Approve or reject a pending upgrade request. Each request is reviewed exactly once;
//	@Description	reviewing an already-reviewed request is refused and re-applies nothing. Admin only.
//	@Tags			Upgrade Requests
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request ID"
//	@Param			request	body		accesssdk.ReviewRequest			true	"Decision: approve or reject"
//	@Success		200		{object}	accesssdk.UpgradeRequestInfo	"id, role, status, reviewed_by, reviewed_at"
//	@Failure		400		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	accesssdk.ErrorResponse			"error, error_description, redirect"
//	@Failure		403		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	accesssdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/requests/{id}/review [post].
func (h *RequestsHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var body accesssdk.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	requestID := r.PathValue("id")
	reviewerID := httpx.UserIDFromContext(ctx)

	req, err := h.UpgradeService.Review(ctx, requestID, reviewerID, domain.ReviewDecision(body.Decision))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDecision):
			httpx.WriteJSON(w, http.StatusBadRequest, accesssdk.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Decision must be approve or reject.",
			})
		case errors.Is(err, service.ErrRequestNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, accesssdk.ErrorResponse{
				Error:            "not_found",
				ErrorDescription: "Upgrade request not found.",
			})
		case errors.Is(err, service.ErrRequestNotPending):
			httpx.WriteJSON(w, http.StatusConflict, accesssdk.ErrorResponse{
				Error:            "request_not_pending",
				ErrorDescription: "This request has already been reviewed.",
			})
		default:
			log.Error("failed to review upgrade request", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, accesssdk.ErrorResponse{
				Error:            "server_error",
				ErrorDescription: "Unable to record the review. Please try again.",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRequestInfo(req))
}

func toRequestInfo(req domain.RoleUpgradeRequest) accesssdk.UpgradeRequestInfo {
	info := accesssdk.UpgradeRequestInfo{
		ID:        req.ID,
		UserID:    req.UserID,
		Role:      string(req.Role),
		Reason:    req.Reason,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.Unix(),
	}
	if req.ReviewedBy != nil {
		info.ReviewedBy = *req.ReviewedBy
	}
	if req.ReviewedAt != nil {
		info.ReviewedAt = req.ReviewedAt.Unix()
	}
	return info
}
