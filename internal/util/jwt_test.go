package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("ext-1", "user@example.com", "instructor", "secret-key", time.Hour)
	assert.NoError(t, err)

	claims, err := ParseJWT(token, "secret-key")
	assert.NoError(t, err)
	assert.Equal(t, "ext-1", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "instructor", claims.Role)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("ext-1", "user@example.com", "learner", "secret-key", time.Hour)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "other-key")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("ext-1", "user@example.com", "learner", "secret-key", -time.Minute)
	assert.NoError(t, err)

	_, err = ParseJWT(token, "secret-key")
	assert.Error(t, err)
}
