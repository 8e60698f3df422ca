package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken("secretaria", "ADMIN", "s3cret", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "secretaria", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("secretaria", "ADMIN", "s3cret", time.Minute)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	token, err := GenerateAccessToken("secretaria", "ADMIN", "s3cret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "s3cret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}
