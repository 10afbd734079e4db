package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken("test-secret", time.Hour, "user1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user1", subject)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := GenerateToken("correct-secret", time.Hour, "user1")
	require.NoError(t, err)

	_, err = ParseToken("wrong-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseToken("test-secret", "definitely.not.a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMissingSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiryBoundary(t *testing.T) {
	issuedAt := time.Now()
	token, err := GenerateToken("test-secret", 60*time.Minute, "user1")
	require.NoError(t, err)

	at := func(offset time.Duration) jwt.ParserOption {
		return jwt.WithTimeFunc(func() time.Time { return issuedAt.Add(offset) })
	}

	subject, err := ParseToken("test-secret", token, at(59*time.Minute))
	require.NoError(t, err, "token must still verify one minute before expiry")
	assert.Equal(t, "user1", subject)

	_, err = ParseToken("test-secret", token, at(61*time.Minute))
	assert.ErrorIs(t, err, ErrInvalidToken, "token must be rejected one minute after expiry")
}
