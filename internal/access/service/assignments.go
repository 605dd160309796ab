package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/pkg/idx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

var ErrAssignmentNotFound = errors.New("role assignment not found")

// AssignmentsService covers the administrative surface over role grants:
// listing, direct grant, and revocation. Unlike the approve path, a direct
// grant of an already-held role is reported as a conflict because the admin
// asked for a specific change that did not happen.
type AssignmentsService struct {
	Store store.Store
}

// ListForUser returns the user's assignment rows, newest first.
func (s *AssignmentsService) ListForUser(ctx context.Context, userID string) ([]domain.RoleAssignment, error) {
	return s.Store.Assignments().ListForUser(ctx, userID)
}

// Grant directly assigns role to userID on behalf of grantedBy.
func (s *AssignmentsService) Grant(ctx context.Context, userID string, role domain.Role, grantedBy string) (domain.RoleAssignment, error) {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		return domain.RoleAssignment{}, ErrInvalidRole
	}

	a := domain.RoleAssignment{
		ID:        idx.New().String(),
		UserID:    userID,
		Role:      role,
		GrantedBy: grantedBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.Assignments().Create(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.RoleAssignment{}, ErrRoleAlreadyHeld
		}
		log.Error("failed to grant role",
			slog.String("user_id", userID),
			slog.String("role", string(role)),
			slog.Any("error", err),
		)
		return domain.RoleAssignment{}, err
	}

	log.Info("role granted",
		slog.String("user_id", userID),
		slog.String("role", string(role)),
		slog.String("granted_by", grantedBy),
	)
	return a, nil
}

// Revoke removes one (user, role) grant.
func (s *AssignmentsService) Revoke(ctx context.Context, userID string, role domain.Role, revokedBy string) error {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		return ErrInvalidRole
	}

	if err := s.Store.Assignments().Delete(ctx, userID, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		log.Error("failed to revoke role",
			slog.String("user_id", userID),
			slog.String("role", string(role)),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("role revoked",
		slog.String("user_id", userID),
		slog.String("role", string(role)),
		slog.String("revoked_by", revokedBy),
	)
	return nil
}
