package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the identity carried by both access and refresh tokens.
type TokenClaims struct {
	UserID uint
	Email  string
	Role   string
}

var ErrInvalidToken = errors.New("invalid token")

func accessTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_MIN")); err == nil && v > 0 {
		return time.Duration(v) * time.Minute
	}
	return 15 * time.Minute
}

func refreshTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_TTL_H")); err == nil && v > 0 {
		return time.Duration(v) * time.Hour
	}
	return 7 * 24 * time.Hour
}

// GenerateAccessToken signs a short-lived HS256 token with JWT_ACCESS_SECRET.
func GenerateAccessToken(claims TokenClaims) (string, error) {
	return signToken(claims, os.Getenv("JWT_ACCESS_SECRET"), accessTTL())
}

// GenerateRefreshToken signs a long-lived HS256 token with JWT_REFRESH_SECRET.
// The caller persists it on the user so /auth/refresh can reject tokens that
// were already rotated away.
func GenerateRefreshToken(claims TokenClaims) (string, error) {
	return signToken(claims, os.Getenv("JWT_REFRESH_SECRET"), refreshTTL())
}

func signToken(claims TokenClaims, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("token secret not configured")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
		"exp":   time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates signature and expiry against JWT_ACCESS_SECRET.
func ParseAccessToken(tokenString string) (TokenClaims, error) {
	return parseToken(tokenString, os.Getenv("JWT_ACCESS_SECRET"))
}

// ParseRefreshToken validates signature and expiry against JWT_REFRESH_SECRET.
func ParseRefreshToken(tokenString string) (TokenClaims, error) {
	return parseToken(tokenString, os.Getenv("JWT_REFRESH_SECRET"))
}

func parseToken(tokenString, secret string) (TokenClaims, error) {
	// An empty secret must never verify anything: a token signed with the
	// empty key would otherwise validate when the env var is unset.
	if secret == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return TokenClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	out := TokenClaims{}
	switch id := claims["id"].(type) {
	case float64: // JSON numbers decode as float64
		out.UserID = uint(id)
	default:
		return TokenClaims{}, ErrInvalidToken
	}
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	return out, nil
}
