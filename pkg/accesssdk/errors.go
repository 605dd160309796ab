package accesssdk

import "fmt"

// Error codes returned by the access service. The three user-visible failure
// classes stay distinguishable: access denial, invalid submission, and
// system error are never collapsed into one generic string.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeUnauthorized   = "unauthorized"
	ErrorCodeAccessDenied   = "access_denied"
	ErrorCodeRequestPending = "request_already_pending"
	ErrorCodeNotPending     = "request_not_pending"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeServerError    = "server_error"
)

// APIError is a typed error decoded from a non-2xx service response.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
	Redirect    string `json:"redirect,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}
