package service

import (
	"context"
	"log/slog"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

// AccessDeniedMessage is the visible notice shown on every denial. It names
// the outcome only; a denial never reveals which roles the user does hold.
const AccessDeniedMessage = "You do not have permission to view this page."

// GuardDecision is the result of a page guard check.
type GuardDecision struct {
	Allowed  bool
	Redirect string
	Message  string
}

// GuardService gates dashboard pages on role membership. Each check is a
// single fresh store lookup so that a revocation takes effect on the next
// page load, with no retry and no caching.
type GuardService struct {
	Store store.Store
}

// CheckAccess decides whether userID may view the page for required. An
// unrecognized required role denies like any other missing role. Storage
// errors propagate and are never reported as a denial.
func (s *GuardService) CheckAccess(ctx context.Context, userID string, required domain.Role) (GuardDecision, error) {
	log := slogx.FromContext(ctx)

	if !required.Valid() {
		log.Warn("guard check against unknown role",
			slog.String("user_id", userID),
			slog.String("role", string(required)),
		)
		return deny(), nil
	}

	has, err := s.Store.Assignments().HasRole(ctx, userID, required)
	if err != nil {
		log.Error("guard role lookup failed",
			slog.String("user_id", userID),
			slog.String("role", string(required)),
			slog.Any("error", err),
		)
		return GuardDecision{}, err
	}

	if !has {
		log.Info("access denied",
			slog.String("user_id", userID),
			slog.String("role", string(required)),
		)
		return deny(), nil
	}

	return GuardDecision{Allowed: true}, nil
}

func deny() GuardDecision {
	return GuardDecision{
		Allowed:  false,
		Redirect: domain.FallbackRoute,
		Message:  AccessDeniedMessage,
	}
}
