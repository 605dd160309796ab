package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"
)

const (
	DefaultResolveAttempts = 3
	DefaultResolveDelay    = 500 * time.Millisecond
)

// ResolverConfig bounds the retry budget for primary-role resolution.
type ResolverConfig struct {
	// MaxAttempts is the total number of role lookups, including the first.
	MaxAttempts int
	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration
}

func (c ResolverConfig) attempts() int {
	if c.MaxAttempts < 1 {
		return DefaultResolveAttempts
	}
	return c.MaxAttempts
}

func (c ResolverConfig) delay() time.Duration {
	if c.RetryDelay <= 0 {
		return DefaultResolveDelay
	}
	return c.RetryDelay
}

// ResolverService answers "what roles does this user hold" and "where should
// this user land". The retry loop exists for one reason: a freshly signed-up
// user can hit role resolution before the signup bootstrap's write is visible.
// Only the empty-result case is retried. Storage errors are never retried and
// never reinterpreted as an empty role set.
type ResolverService struct {
	Store  store.Store
	Config ResolverConfig
}

// GetRoles returns the user's roles from a single fresh lookup, sorted
// lexically. No retry.
func (s *ResolverService) GetRoles(ctx context.Context, userID string) ([]domain.Role, error) {
	roles, err := s.Store.Assignments().ListRolesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.Sort(roles)
	return roles, nil
}

// ResolvePrimaryRole determines the user's primary role with a bounded retry
// on the empty case. Returns ok=false when the user still holds no role after
// the budget is exhausted. The primary role is the lexically-first label of
// the held set, so resolution is deterministic whatever order storage returns.
func (s *ResolverService) ResolvePrimaryRole(ctx context.Context, userID string) (domain.Role, bool, error) {
	log := slogx.FromContext(ctx)

	attempts := s.Config.attempts()
	for attempt := 1; attempt <= attempts; attempt++ {
		roles, err := s.Store.Assignments().ListRolesForUser(ctx, userID)
		if err != nil {
			log.Error("role lookup failed",
				slog.String("user_id", userID),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			return "", false, err
		}

		if len(roles) > 0 {
			// Lexically-first label wins, whatever order storage returned.
			return slices.Min(roles), true, nil
		}

		if attempt == attempts {
			break
		}

		log.Debug("no roles yet, retrying",
			slog.String("user_id", userID),
			slog.Int("attempt", attempt),
		)
		if err := sleepCtx(ctx, s.Config.delay()); err != nil {
			return "", false, err
		}
	}

	log.Warn("no roles found after retry budget",
		slog.String("user_id", userID),
		slog.Int("attempts", attempts),
	)
	return "", false, nil
}

// ResolveRoute resolves the user's primary role and maps it to a dashboard
// route. A user with no role lands on the fallback dashboard; that outcome is
// not an error.
func (s *ResolverService) ResolveRoute(ctx context.Context, userID string) (domain.Role, string, error) {
	role, ok, err := s.ResolvePrimaryRole(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", domain.FallbackRoute, nil
	}
	return role, domain.RouteForRole(role), nil
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
