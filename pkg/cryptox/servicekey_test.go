package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceKeyHashAndVerify(t *testing.T) {
	t.Parallel()

	key, err := GenerateServiceKey()
	require.NoError(t, err)
	require.NotEmpty(t, key)

	hash, err := HashServiceKey(key)
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$")

	ok, err := VerifyServiceKey(key, hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyServiceKey("wrong-key", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestServiceKeysAreUnique(t *testing.T) {
	t.Parallel()

	a, err := GenerateServiceKey()
	require.NoError(t, err)
	b, err := GenerateServiceKey()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyServiceKeyRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	_, err := VerifyServiceKey("key", "not-a-phc-string")
	require.Error(t, err)

	_, err = VerifyServiceKey("key", "$bcrypt$whatever")
	require.Error(t, err)
}
