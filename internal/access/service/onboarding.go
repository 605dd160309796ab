package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/pkg/idx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

var ErrInvalidOnboardRequest = errors.New("invalid onboarding request")

// OnboardResult reports what onboarding did for a user.
type OnboardResult struct {
	Role            domain.Role
	AlreadyAssigned bool
}

// OnboardingService bootstraps freshly created identities. It runs behind the
// service key, never as the signing-up user: self-assignment of roles is a
// privilege-escalation hole, so only this path and administrator review may
// write a user's first assignment.
type OnboardingService struct {
	Store store.Store
}

// Onboard ensures userID ends up with at least one role. Idempotent: if the
// user already holds any assignment, nothing is written and the call reports
// already-assigned. Otherwise the preferred-role hint is honoured when it
// names a recognized role, falling back to the default, and exactly one
// assignment is inserted. The profile is upserted either way so the review
// queue can show requester identity.
func (s *OnboardingService) Onboard(ctx context.Context, userID, email, displayName, preferredRole string) (OnboardResult, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(userID) == "" || strings.TrimSpace(email) == "" {
		return OnboardResult{}, ErrInvalidOnboardRequest
	}

	role := domain.DefaultRole
	if hinted, ok := domain.ParseRole(preferredRole); ok {
		role = hinted
	} else if preferredRole != "" {
		log.Warn("unrecognized preferred role, using default",
			slog.String("user_id", userID),
			slog.String("preferred_role", preferredRole),
		)
	}

	now := time.Now().UTC()
	result := OnboardResult{Role: role}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().Upsert(ctx, domain.Profile{
			UserID:      userID,
			Email:       email,
			DisplayName: displayName,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return err
		}

		count, err := tx.Assignments().CountForUser(ctx, userID)
		if err != nil {
			return err
		}
		if count > 0 {
			roles, err := tx.Assignments().ListRolesForUser(ctx, userID)
			if err != nil {
				return err
			}
			result.Role = slices.Min(roles)
			result.AlreadyAssigned = true
			return nil
		}

		return tx.Assignments().Create(ctx, domain.RoleAssignment{
			ID:        idx.New().String(),
			UserID:    userID,
			Role:      role,
			GrantedBy: domain.GrantedBySignup,
			CreatedAt: now,
		})
	})
	if err != nil {
		// A concurrent onboard for the same user can win the insert race.
		// The unique constraint makes the outcome identical to the
		// already-assigned branch, so report it that way.
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Debug("onboarding lost insert race, role already present",
				slog.String("user_id", userID),
			)
			result.AlreadyAssigned = true
			return result, nil
		}
		log.Error("onboarding failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return OnboardResult{}, err
	}

	if result.AlreadyAssigned {
		log.Debug("onboarding skipped, user already has roles",
			slog.String("user_id", userID),
		)
	} else {
		log.Info("default role assigned",
			slog.String("user_id", userID),
			slog.String("role", string(role)),
		)
	}
	return result, nil
}
