package accesssdk

// ErrorResponse is the standard error body returned by the access service.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Redirect         string `json:"redirect,omitempty"`
}

// GuardResponse is the outcome of a page guard check. When Allowed is false,
// Redirect names the fallback dashboard and Message carries the visible
// access-denied notice. Nothing in a denial reveals which roles the user
// actually holds.
type GuardResponse struct {
	Allowed  bool   `json:"allowed"`
	Redirect string `json:"redirect,omitempty"`
	Message  string `json:"message,omitempty"`
}

// RouteResponse is the result of primary-role resolution. Role is empty when
// the user holds no role after the retry budget; Route is always set and
// falls back to the default dashboard.
type RouteResponse struct {
	Role  string `json:"role,omitempty"`
	Route string `json:"route"`
}

// RoleInfo describes one role in the closed set together with its dashboard.
type RoleInfo struct {
	Role  string `json:"role"`
	Route string `json:"route"`
}

// ListRolesResponse enumerates the closed role set.
type ListRolesResponse struct {
	Roles    []RoleInfo `json:"roles"`
	Fallback string     `json:"fallback"`
}

// AssignmentInfo describes one persisted role grant.
type AssignmentInfo struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	GrantedBy string `json:"granted_by"`
	CreatedAt int64  `json:"created_at"`
}

// ListAssignmentsResponse lists a user's role grants.
type ListAssignmentsResponse struct {
	Assignments []AssignmentInfo `json:"assignments"`
}

// GrantRoleRequest asks for a direct administrative role grant.
type GrantRoleRequest struct {
	Role string `json:"role"`
}

// SubmitRequestRequest asks for an additional role with a justification.
type SubmitRequestRequest struct {
	Role   string `json:"role"`
	Reason string `json:"reason"`
}

// UpgradeRequestInfo is one role upgrade request, any status.
type UpgradeRequestInfo struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	Reason     string `json:"reason"`
	Status     string `json:"status"`
	ReviewedBy string `json:"reviewed_by,omitempty"`
	ReviewedAt int64  `json:"reviewed_at,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

// ListRequestsResponse lists upgrade requests, newest first.
type ListRequestsResponse struct {
	Requests []UpgradeRequestInfo `json:"requests"`
}

// PendingRequestInfo is a pending request enriched with requester identity
// for the administrator review queue.
type PendingRequestInfo struct {
	UpgradeRequestInfo

	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
}

// ListPendingResponse is the system-wide review queue, oldest first.
type ListPendingResponse struct {
	Requests []PendingRequestInfo `json:"requests"`
}

// ReviewRequest carries an administrator's decision on a pending request.
type ReviewRequest struct {
	Decision string `json:"decision"` // "approve" or "reject"
}

// OnboardRequest bootstraps a freshly created identity: profile fields plus
// an optional preferred-role hint from the signup form.
type OnboardRequest struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	PreferredRole string `json:"preferred_role,omitempty"`
}

// OnboardResponse reports the assigned role and whether this call created it.
type OnboardResponse struct {
	Role            string `json:"role"`
	AlreadyAssigned bool   `json:"already_assigned"`
}

// HealthResponse is returned by the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
