package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/pkg/idx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

var (
	ErrInvalidRole           = errors.New("unrecognized role")
	ErrReasonRequired        = errors.New("a justification is required")
	ErrRoleAlreadyHeld       = errors.New("role already assigned")
	ErrRequestAlreadyPending = errors.New("an upgrade request is already pending for this user")
	ErrRequestNotFound       = errors.New("upgrade request not found")
	ErrRequestNotPending     = errors.New("upgrade request has already been reviewed")
	ErrInvalidDecision       = errors.New("decision must be approve or reject")
)

// UpgradeService runs the role upgrade workflow: users submit a request for
// an additional role with a justification, administrators approve or reject
// it, and an approval grants the role. Each request is reviewed exactly once.
type UpgradeService struct {
	Store store.Store
}

// Submit files an upgrade request for userID.
//
// Preconditions checked at this write boundary: the role must be recognized,
// the reason non-empty, the role not already held, and no other pending
// request may exist for the user. The pending check is check-then-act; two
// simultaneous submits can both pass it. The consequence is bounded (an admin
// sees two pending rows and rejects one) and reviewing stays safe because the
// review side is atomic.
func (s *UpgradeService) Submit(ctx context.Context, userID string, role domain.Role, reason string) (domain.RoleUpgradeRequest, error) {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		log.Warn("upgrade request for unknown role",
			slog.String("user_id", userID),
			slog.String("role", string(role)),
		)
		return domain.RoleUpgradeRequest{}, ErrInvalidRole
	}
	if strings.TrimSpace(reason) == "" {
		return domain.RoleUpgradeRequest{}, ErrReasonRequired
	}

	held, err := s.Store.Assignments().HasRole(ctx, userID, role)
	if err != nil {
		log.Error("failed to check existing assignment", slog.Any("error", err))
		return domain.RoleUpgradeRequest{}, err
	}
	if held {
		return domain.RoleUpgradeRequest{}, ErrRoleAlreadyHeld
	}

	pending, err := s.Store.Requests().HasPendingForUser(ctx, userID)
	if err != nil {
		log.Error("failed to check pending requests", slog.Any("error", err))
		return domain.RoleUpgradeRequest{}, err
	}
	if pending {
		log.Info("submit refused, request already pending",
			slog.String("user_id", userID),
		)
		return domain.RoleUpgradeRequest{}, ErrRequestAlreadyPending
	}

	now := time.Now().UTC()
	req := domain.RoleUpgradeRequest{
		ID:        idx.New().String(),
		UserID:    userID,
		Role:      role,
		Reason:    strings.TrimSpace(reason),
		Status:    domain.RequestPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Requests().Create(ctx, req); err != nil {
		log.Error("failed to create upgrade request", slog.Any("error", err))
		return domain.RoleUpgradeRequest{}, err
	}

	log.Info("upgrade request submitted",
		slog.String("request_id", req.ID),
		slog.String("user_id", userID),
		slog.String("role", string(role)),
	)
	return req, nil
}

// Review records a terminal decision on a pending request.
//
// The pending -> terminal transition happens via a conditional update that
// only matches a still-pending row, inside one transaction with the grant.
// Re-reviewing a terminal request therefore matches nothing and is refused
// without re-applying side effects. An approval inserts the assignment with
// insert-or-ignore semantics, so a role that already arrived through another
// path does not fail the review.
func (s *UpgradeService) Review(ctx context.Context, requestID, reviewerID string, decision domain.ReviewDecision) (domain.RoleUpgradeRequest, error) {
	log := slogx.FromContext(ctx)

	var status domain.RequestStatus
	switch decision {
	case domain.DecisionApprove:
		status = domain.RequestApproved
	case domain.DecisionReject:
		status = domain.RequestRejected
	default:
		return domain.RoleUpgradeRequest{}, ErrInvalidDecision
	}

	req, err := s.Store.Requests().GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.RoleUpgradeRequest{}, ErrRequestNotFound
		}
		log.Error("failed to fetch upgrade request", slog.Any("error", err))
		return domain.RoleUpgradeRequest{}, err
	}

	reviewedAt := time.Now().UTC()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Requests().MarkReviewed(ctx, requestID, status, reviewerID, reviewedAt); err != nil {
			return err
		}

		if status == domain.RequestApproved {
			_, err := tx.Assignments().CreateIfAbsent(ctx, domain.RoleAssignment{
				ID:        idx.New().String(),
				UserID:    req.UserID,
				Role:      req.Role,
				GrantedBy: reviewerID,
				CreatedAt: reviewedAt,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("review refused, request no longer pending",
				slog.String("request_id", requestID),
				slog.String("status", string(req.Status)),
			)
			return domain.RoleUpgradeRequest{}, ErrRequestNotPending
		}
		log.Error("failed to review upgrade request",
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)
		return domain.RoleUpgradeRequest{}, err
	}

	log.Info("upgrade request reviewed",
		slog.String("request_id", requestID),
		slog.String("user_id", req.UserID),
		slog.String("role", string(req.Role)),
		slog.String("status", string(status)),
		slog.String("reviewer_id", reviewerID),
	)

	req.Status = status
	req.ReviewedBy = &reviewerID
	req.ReviewedAt = &reviewedAt
	req.UpdatedAt = reviewedAt
	return req, nil
}

// ListForUser returns the user's own requests, any status, newest first.
func (s *UpgradeService) ListForUser(ctx context.Context, userID string) ([]domain.RoleUpgradeRequest, error) {
	return s.Store.Requests().ListForUser(ctx, userID)
}

// ListPending returns every pending request, oldest first, enriched with the
// requester's profile for the review queue.
func (s *UpgradeService) ListPending(ctx context.Context) ([]domain.PendingRequest, error) {
	return s.Store.Requests().ListPending(ctx)
}
