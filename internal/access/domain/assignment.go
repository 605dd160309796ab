package domain

import "time"

// RoleAssignment is a persisted grant of one role to one user. Assignments are
// only ever inserted or removed, never updated, and are unique per
// (user, role) pair.
type RoleAssignment struct {
	ID        string
	UserID    string
	Role      Role
	GrantedBy string // reviewing admin's user ID, or "signup" for the bootstrap path
	CreatedAt time.Time
}

// GrantedBySignup marks assignments created by the signup-time bootstrap
// rather than an administrator.
const GrantedBySignup = "signup"
