package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext credential with bcrypt. The original
// system stored unsalted SHA-256 digests; bcrypt is a deliberate deviation,
// which changes the on-disk credential format.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext credential matches the stored
// bcrypt hash.
func CheckPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
