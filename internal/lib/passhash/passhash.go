// Package passhash wraps bcrypt for storing user passwords.
package passhash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Generate returns a salted bcrypt digest of password. Repeated calls with
// the same password yield different digests.
func Generate(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Compare reports whether password reproduces the stored digest.
func Compare(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
