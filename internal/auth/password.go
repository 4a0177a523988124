package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltLength is the size of the per-user random salt in bytes.
	SaltLength = 64
	// HashLength is the size of the derived key in bytes.
	HashLength = 64
	// hashIterations balances offline brute-force cost against
	// interactive login latency.
	hashIterations = 10000
)

// DerivePassword derives a fixed-length key from a plaintext password and a
// per-user salt. Deterministic: identical inputs always yield identical bytes.
func DerivePassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, hashIterations, HashLength, sha512.New)
}

// GenerateSalt returns fresh cryptographically random salt bytes. A failure
// to read entropy is an integration error and must not be swallowed.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// VerifyPassword reports whether password derives to the stored hash under
// the stored salt. Constant-time comparison.
func VerifyPassword(password string, salt, hash []byte) bool {
	derived := DerivePassword(password, salt)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
