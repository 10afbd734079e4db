package hashutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct-horse-battery-staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)

	assert.True(t, Verify("correct-horse-battery-staple", hash))
}

func TestVerifyWrongPassword(t *testing.T) {
	hash, err := Hash("right-password")
	require.NoError(t, err)

	assert.False(t, Verify("wrong-password", hash))
}

func TestHashProducesDistinctSalts(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of one password must carry different salts")
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("password", "not-a-bcrypt-hash"))
	assert.False(t, Verify("password", ""))
}
