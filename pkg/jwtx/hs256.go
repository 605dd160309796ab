package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints a signed token from claims.
type Signer interface {
	Sign(c Claims) (string, error)
}

// Verifier checks a raw token's signature and returns its claims. Expiry and
// issuer validation is the caller's responsibility via the Claims methods.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// HS256 signs and verifies session tokens with a shared secret, per the
// identity-provider contract.
type HS256 struct {
	secret []byte
}

func NewHS256(secret []byte) *HS256 {
	return &HS256{secret: secret}
}

func (h *HS256) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(h.secret)
}

func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSignature
		}
		return h.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			return Claims{}, ErrSignature
		}
	}
	if !token.Valid {
		return Claims{}, ErrSignature
	}

	return claims, nil
}
