package accesssdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal typed client for the access service, intended for the
// web frontend's backend and for sibling services that need guard or route
// decisions.
type Client struct {
	// BaseURL is the root of the access service, e.g. "http://access:8080".
	BaseURL string

	// HTTPClient is used for all requests. Defaults to a client with a
	// 10 second timeout when nil.
	HTTPClient *http.Client

	// SessionToken is sent as a bearer token on authenticated endpoints.
	SessionToken string

	// ServiceKey is sent on elevated endpoints such as Onboard.
	ServiceKey string
}

// New creates a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into out. Non-2xx responses are returned as *APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.SessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.SessionToken)
	}
	if c.ServiceKey != "" {
		req.Header.Set("X-Service-Key", c.ServiceKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// parseErrorResponse decodes an error body into an *APIError, falling back
// to a status-only error when the body is not the standard shape.
func parseErrorResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = ErrorCodeServerError
		apiErr.Description = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}
	return apiErr
}

// Guard asks whether the current session may view the page for role.
func (c *Client) Guard(ctx context.Context, role string) (*GuardResponse, error) {
	var out GuardResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/guard/"+url.PathEscape(role), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Route resolves the current session's primary role and landing route.
func (c *Client) Route(ctx context.Context) (*RouteResponse, error) {
	var out RouteResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/route", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRoles enumerates the closed role set with dashboard routes.
func (c *Client) ListRoles(ctx context.Context) (*ListRolesResponse, error) {
	var out ListRolesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/roles", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyRoles lists the current session's role assignments.
func (c *Client) MyRoles(ctx context.Context) (*ListAssignmentsResponse, error) {
	var out ListAssignmentsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/me/roles", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitRequest files a role upgrade request for the current session.
func (c *Client) SubmitRequest(ctx context.Context, role, reason string) (*UpgradeRequestInfo, error) {
	var out UpgradeRequestInfo
	req := SubmitRequestRequest{Role: role, Reason: reason}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/requests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMyRequests lists the current session's upgrade requests, newest first.
func (c *Client) ListMyRequests(ctx context.Context) (*ListRequestsResponse, error) {
	var out ListRequestsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/requests", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPending lists all pending requests for administrator review.
func (c *Client) ListPending(ctx context.Context) (*ListPendingResponse, error) {
	var out ListPendingResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/requests/pending", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Review records an approve or reject decision on a pending request.
func (c *Client) Review(ctx context.Context, requestID, decision string) (*UpgradeRequestInfo, error) {
	var out UpgradeRequestInfo
	req := ReviewRequest{Decision: decision}
	path := "/v1/requests/" + url.PathEscape(requestID) + "/review"
	if err := c.doJSON(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUserRoles lists another user's assignments. Requires an admin session.
func (c *Client) ListUserRoles(ctx context.Context, userID string) (*ListAssignmentsResponse, error) {
	var out ListAssignmentsResponse
	path := "/v1/users/" + url.PathEscape(userID) + "/roles"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GrantRole directly grants a role to a user. Requires an admin session.
func (c *Client) GrantRole(ctx context.Context, userID, role string) (*AssignmentInfo, error) {
	var out AssignmentInfo
	path := "/v1/users/" + url.PathEscape(userID) + "/roles"
	if err := c.doJSON(ctx, http.MethodPost, path, GrantRoleRequest{Role: role}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeRole removes a role from a user. Requires an admin session.
func (c *Client) RevokeRole(ctx context.Context, userID, role string) error {
	path := "/v1/users/" + url.PathEscape(userID) + "/roles/" + url.PathEscape(role)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// Onboard assigns the default role to a freshly signed-up user. Requires the
// service key, not a session.
func (c *Client) Onboard(ctx context.Context, req OnboardRequest) (*OnboardResponse, error) {
	var out OnboardResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/onboard", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
