package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the bcrypt work factor used for new password hashes.
// Existing hashes carry their own cost and verify regardless.
const BcryptCost = 10

// HashPassword hashes a plaintext password with a fresh random salt.
// The returned digest embeds algorithm, cost and salt, so two calls on the
// same plaintext never produce the same output.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored digest using
// a constant-time comparison. Malformed digests verify as false, never panic.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
