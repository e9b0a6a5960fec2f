package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3r$ecret", hashed)

	assert.True(t, CheckPassword(hashed, "Sup3r$ecret"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
	assert.False(t, CheckPassword("", "Sup3r$ecret"))
}
