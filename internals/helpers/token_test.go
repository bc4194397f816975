package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nodues_backend/internals/configs"
)

func TestTokenRoundTrip(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	id := uuid.New()
	token, err := IssueToken(id, "faculty")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, userType, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "faculty", userType)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = prev })

	token, err := IssueToken(uuid.New(), "student")
	require.NoError(t, err)

	configs.JWTSecret = "another-secret"
	_, _, err = ParseToken(token)
	assert.Error(t, err)

	configs.JWTSecret = "test-secret"
	_, _, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	t.Cleanup(func() { configs.JWTSecret = prev })

	_, err := IssueToken(uuid.New(), "hod")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.NoError(t, CheckPasswordHash(hash, "correct horse battery"))
	assert.Error(t, CheckPasswordHash(hash, "wrong password"))
}
