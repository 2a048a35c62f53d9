package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")

	claims := TokenClaims{UserID: 42, Email: "alice@example.com", Role: "user"}
	token, err := GenerateAccessToken(claims)
	require.NoError(t, err)

	parsed, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestAccessAndRefreshSecretsAreSeparate(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	claims := TokenClaims{UserID: 7, Email: "bob@example.com", Role: "user"}

	refresh, err := GenerateRefreshToken(claims)
	require.NoError(t, err)

	// A refresh token must never pass as an access token.
	_, err = ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	parsed, err := ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, claims, parsed)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    float64(1),
		"email": "alice@example.com",
		"role":  "user",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = ParseAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")

	token, err := GenerateAccessToken(TokenClaims{UserID: 1})
	require.NoError(t, err)

	t.Setenv("JWT_ACCESS_SECRET", "rotated-secret")
	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingIDClaim(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "ghost@example.com",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})
	tokenString, err := anonymous.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = ParseAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := GenerateAccessToken(TokenClaims{UserID: 1})
	assert.Error(t, err)
}

func TestParseRejectsEmptyKeyTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")

	// With the secret unset, a token signed with the empty key must not
	// verify; otherwise anyone could mint admin claims.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    float64(1),
		"email": "attacker@example.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})
	tokenString, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	_, err = ParseAccessToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
