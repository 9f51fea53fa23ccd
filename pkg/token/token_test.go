package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "admin", "s3cret", 15)
	require.NoError(t, err)

	claims, err := ValidateJWT(signed, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "admin", "s3cret", 15)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "other")
	assert.EqualError(t, err, "token signature is invalid")
}

func TestValidateRejectsExpired(t *testing.T) {
	signed, err := GenerateJWT(42, "admin", "s3cret", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "s3cret")
	assert.EqualError(t, err, "token has expired")
}

func TestValidateRejectsEmptyInput(t *testing.T) {
	_, err := ValidateJWT("", "s3cret")
	assert.Error(t, err)

	_, err = GenerateJWT(1, "", "", 15)
	assert.Error(t, err)
}
