package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("dentist", "dentist")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dentist", claims.Username)
	assert.Equal(t, "dentist", claims.Role)
	assert.False(t, claims.Expiry.IsZero())
}

func TestValidateSessionTokenRoles(t *testing.T) {
	token, err := GenerateSessionToken("recep", "receptionist")
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "receptionist")
	assert.NoError(t, err)

	_, err = ValidateSessionToken(token, "admin", "receptionist")
	assert.NoError(t, err)

	_, err = ValidateSessionToken(token, "admin")
	assert.Error(t, err)
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}
