// Package cryptox holds the key handling for the elevated onboarding path:
// opaque service keys, argon2id hashing, and constant-time verification.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters per OWASP guidance for interactive verification.
const (
	argonMemory      = 19456 // KiB
	argonIterations  = 2
	argonParallelism = 1
	argonSaltLen     = 16
	argonKeyLen      = 32
)

// ServiceKeySize is the number of random bytes in a generated service key.
const ServiceKeySize = 32

// GenerateServiceKey returns a new opaque service key, URL-safe base64.
func GenerateServiceKey() (string, error) {
	b := make([]byte, ServiceKeySize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate service key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashServiceKey hashes a service key with argon2id. Returns a PHC-format
// string suitable for storing in configuration.
func HashServiceKey(key string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	derived := argon2.IDKey([]byte(key), salt, argonIterations, argonMemory, argonParallelism, argonKeyLen)
	hash := fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory, argonIterations, argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(derived),
	)
	return hash, nil
}

// VerifyServiceKey checks a presented key against a PHC-format argon2id hash.
// Returns (false, nil) for a wrong key; errors are reserved for bad hashes.
func VerifyServiceKey(key, hash string) (bool, error) {
	// $argon2id$v=19$m=M,t=T,p=P$salt$key
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, errors.New("cryptox: invalid hash format")
	}

	var m, t, p uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false, fmt.Errorf("cryptox: parse params: %w", err)
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("cryptox: decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("cryptox: decode key: %w", err)
	}

	actual := argon2.IDKey([]byte(key), salt, t, m, uint8(p), uint32(len(expected)))
	return subtle.ConstantTimeCompare(expected, actual) == 1, nil
}
