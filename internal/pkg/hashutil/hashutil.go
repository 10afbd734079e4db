// Package hashutil wraps bcrypt password hashing. The produced hash is
// a single opaque string that embeds its own salt and cost.
package hashutil

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Malformed
// hash input yields false rather than an error; bcrypt compares in
// constant time.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
