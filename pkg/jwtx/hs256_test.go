package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("test-secret"))

	claims := NewSessionClaims("user-1", "test-issuer", "alice@example.com", "Alice", time.Hour, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := signer.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, "Alice", got.DisplayName)

	require.NoError(t, got.ValidateExpiry())
	require.NoError(t, got.ValidateIssuer("test-issuer"))
}

func TestHS256RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("secret-a"))
	verifier := NewHS256([]byte("secret-b"))

	raw, err := signer.Sign(NewSessionClaims("user-1", "iss", "", "", time.Hour, time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrSignature)
}

func TestHS256RejectsMalformedToken(t *testing.T) {
	t.Parallel()

	_, err := NewHS256([]byte("secret")).Verify("not.a.token")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestHS256RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("secret"))
	raw, err := signer.Sign(NewSessionClaims("user-1", "iss", "", "", time.Minute, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	_, err = signer.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestValidateIssuer(t *testing.T) {
	t.Parallel()

	claims := NewSessionClaims("user-1", "expected", "", "", time.Hour, time.Now())
	require.NoError(t, claims.ValidateIssuer("expected"))
	require.ErrorIs(t, claims.ValidateIssuer("other"), ErrIssuer)
	require.NoError(t, claims.ValidateIssuer(""), "empty expected issuer enforces nothing")
}
