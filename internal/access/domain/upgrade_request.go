package domain

import "time"

// RequestStatus is the lifecycle state of a role upgrade request. A request
// transitions exactly once from pending to one of the terminal states and is
// never revisited after that.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Terminal reports whether the status can no longer change.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// ReviewDecision is an administrator's verdict on a pending request.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

// RoleUpgradeRequest is a user's ask to be granted an additional role,
// reviewed by an administrator. ReviewedBy and ReviewedAt are nil until the
// request reaches a terminal state.
type RoleUpgradeRequest struct {
	ID         string
	UserID     string
	Role       Role
	Reason     string
	Status     RequestStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PendingRequest is a pending upgrade request enriched with the requester's
// profile for the administrator review queue.
type PendingRequest struct {
	RoleUpgradeRequest

	RequesterName  string
	RequesterEmail string
}
