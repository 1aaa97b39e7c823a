// Package crypto implements server-side password hashing and signing-key derivation.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/hkdf"
)

// PasswordHasher hashes and verifies user passwords and client secrets.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)
	// Verify reports whether password matches hash.
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher constructs a hasher. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a bcrypt hash; bcrypt embeds its own salt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(b), err
}

// Verify compares a plaintext password with a bcrypt hash.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

const signingKeyInfo = "authkeeper/session-token/hs256"

// SigningKeyLen is the length of keys returned by DeriveSigningKey.
const SigningKeyLen = 32

// DeriveSigningKey derives a stable HS256 key from a configured secret with HKDF-SHA256.
// The same secret always yields the same key.
func DeriveSigningKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("empty signing secret")
	}
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKeyInfo))
	key := make([]byte, SigningKeyLen)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}
