package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret12")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret12", hash)

	assert.True(t, CheckPassword(hash, "secret12"))
	assert.False(t, CheckPassword(hash, "secret13"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("secret12")
	require.NoError(t, err)
	second, err := HashPassword("secret12")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "secret12"))
	assert.True(t, CheckPassword(second, "secret12"))
}

func TestCheckPasswordRejectsMalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "secret12"))
}
