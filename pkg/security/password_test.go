package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword("hunter2hunter2", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestCheckPasswordArgumentOrder(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	// Plain text first, hash second. Swapping them must fail, not
	// silently succeed.
	assert.True(t, CheckPassword("hunter2hunter2", hash))
	assert.False(t, CheckPassword(hash, "hunter2hunter2"))
}
