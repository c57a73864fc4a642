package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/securepass-api/pkg/jwt"
)

func TestGenerateParse_RoundTripsPrincipal(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "admin-1", "company-1", "Admin", "securepass-api", 5)
	require.NoError(t, err)

	userID, companyID, role, err := jwt.Parse("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", userID)
	assert.Equal(t, "company-1", companyID)
	assert.Equal(t, "Admin", role)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "u", "", "SuperAdmin", "securepass-api", 5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tok, err := jwt.Generate("s3cret", "u", "c", "User", "securepass-api", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("s3cret", tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "u", "c", "User", "i", 1)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
