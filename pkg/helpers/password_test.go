package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"), "bcrypt hash prefix")
	assert.True(t, CompareHashAndPassword(hash, "hunter22"))
	assert.False(t, CompareHashAndPassword(hash, "hunter23"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "hunter22"))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "each hash carries its own salt")
}
