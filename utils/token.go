package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateResetToken returns a random password-reset token and the sha256
// digest that is stored in place of the plaintext. Only the digest ever
// touches the database; the plaintext goes out in the reset email.
func GenerateResetToken() (token, digest string, err error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(buf)
	return token, HashResetToken(token), nil
}

// HashResetToken maps a plaintext reset token to its stored form.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
