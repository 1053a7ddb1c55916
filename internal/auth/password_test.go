package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	// hashing the same password twice must produce different salts
	hash2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// a garbage hash must verify false, never panic or error out
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret1", ""))
}
