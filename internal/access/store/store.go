package store

import (
	"context"
	"errors"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this
// and expose sub-repositories to keep concerns tidy and testable.
//
// Every query a repository runs is scoped by an explicit user or request ID
// filter. There are no unscoped bulk writes anywhere in this interface; the
// tables are shared across all identities and a missing filter would be a
// cross-tenant mutation.
type Store interface {
	Assignments() Assignments
	Requests() Requests
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step writes such as approve-and-grant.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Assignments interface {
	// ListRolesForUser returns the role labels held by a user, in no
	// particular order. Callers needing a single role must pick
	// deterministically. Errors are surfaced unchanged; an empty result is
	// not an error.
	ListRolesForUser(ctx context.Context, userID string) ([]domain.Role, error)

	// ListForUser returns the full assignment rows for a user, newest first.
	ListForUser(ctx context.Context, userID string) ([]domain.RoleAssignment, error)

	// HasRole reports whether the user holds the given role. It answers only
	// the membership question and never reveals what else the user holds.
	HasRole(ctx context.Context, userID string, role domain.Role) (bool, error)

	// Create inserts an assignment. Returns ErrAlreadyExists if the
	// (user, role) pair is already granted.
	Create(ctx context.Context, a domain.RoleAssignment) error

	// CreateIfAbsent inserts an assignment unless the (user, role) pair
	// already exists, reporting whether a row was inserted. Used by the
	// approve path, which must tolerate the role having arrived through
	// another path.
	CreateIfAbsent(ctx context.Context, a domain.RoleAssignment) (bool, error)

	// Delete removes one (user, role) grant. Returns ErrNotFound if the
	// user does not hold the role.
	Delete(ctx context.Context, userID string, role domain.Role) error

	// CountForUser returns the number of assignments a user holds.
	CountForUser(ctx context.Context, userID string) (int, error)
}

type Requests interface {
	// Create inserts a new upgrade request (status pending).
	Create(ctx context.Context, r domain.RoleUpgradeRequest) error

	// GetByID fetches a request by its ID.
	GetByID(ctx context.Context, id string) (domain.RoleUpgradeRequest, error)

	// HasPendingForUser reports whether the user has an outstanding pending
	// request. This backs the one-pending-per-user policy at the write
	// boundary.
	HasPendingForUser(ctx context.Context, userID string) (bool, error)

	// ListForUser returns all of a user's requests, any status, newest first.
	ListForUser(ctx context.Context, userID string) ([]domain.RoleUpgradeRequest, error)

	// ListPending returns every pending request system-wide, oldest first,
	// each enriched with the requester's profile. Read-only.
	ListPending(ctx context.Context) ([]domain.PendingRequest, error)

	// MarkReviewed stamps status, reviewer and review time onto a request
	// that is still pending. Returns ErrNotFound if no pending row matched,
	// which is how a lost review race or a re-review of a terminal request
	// surfaces.
	MarkReviewed(ctx context.Context, id string, status domain.RequestStatus, reviewerID string, reviewedAt time.Time) error

	// DeleteTerminalBefore removes approved/rejected requests reviewed
	// before the cutoff. Pending requests are never touched. Housekeeping.
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Profiles interface {
	// Upsert creates or refreshes the profile row for a user.
	Upsert(ctx context.Context, p domain.Profile) error

	// GetByUserID fetches a profile.
	GetByUserID(ctx context.Context, userID string) (domain.Profile, error)
}
