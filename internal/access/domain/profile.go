package domain

import "time"

// Profile holds the display fields the platform keeps for an identity. The
// identity itself is owned by the external auth provider; this record exists
// so the review queue can show who is asking.
type Profile struct {
	UserID      string
	Email       string
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
