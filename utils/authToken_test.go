package utils

import (
	"testing"
	"time"

	"github.com/o1egl/paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSymmetricKey = "0123456789abcdef0123456789abcdef"

func setTestKey(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", testSymmetricKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestKey(t)

	patientID := "7f9c24e5-5bb3-4d21-a376-000000000001"
	token, err := GenerateAccessToken(42, "ana@x.com", "patient", &patientID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "patient", claims.Role)
	require.NotNil(t, claims.PatientID)
	assert.Equal(t, patientID, *claims.PatientID)
	assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.Expiry, time.Minute)
}

func TestValidateTokenRoleCheck(t *testing.T) {
	setTestKey(t)

	token, err := GenerateAccessToken(1, "admin@dental.clinic", "admin", nil)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	_, err = ValidateToken(token, "patient")
	assert.Error(t, err)

	// Any of the listed roles is enough
	_, err = ValidateToken(token, "admin", "patient")
	assert.NoError(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	setTestKey(t)

	claims := TokenClaims{
		AccountID: 1,
		Email:     "admin@dental.clinic",
		Role:      "admin",
		Expiry:    time.Now().Add(-time.Minute),
	}
	token, err := paseto.NewV2().Encrypt([]byte(testSymmetricKey), claims, nil)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorContains(t, err, "expired")
}

func TestValidateTokenGarbage(t *testing.T) {
	setTestKey(t)

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
