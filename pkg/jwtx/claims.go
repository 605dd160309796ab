package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session-token claims the identity provider mints for a
// signed-in user. The subject is the opaque user reference. Roles are NOT
// carried in the token; every authorization decision reads the store fresh.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user, as known to the identity provider.
	Email string `json:"email,omitempty"`

	// DisplayName is the user-facing name for the session.
	DisplayName string `json:"name,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a user session.
func NewSessionClaims(subject, issuer, email, displayName string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:       email,
		DisplayName: displayName,
	}
}

// ValidateIssuer checks the issuer matches the expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it becomes valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
