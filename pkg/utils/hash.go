package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier abstracts how stored staff credentials are checked, so
// the hashing scheme can change without touching login callers.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

// BcryptVerifier hashes with bcrypt. Stored values that are not bcrypt
// hashes (rows imported from the legacy store, which kept plaintext) are
// compared in constant time instead.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a verifier with the default bcrypt cost
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt hash of a password
func (v *BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify checks a password against the stored credential
func (v *BcryptVerifier) Verify(password, stored string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
