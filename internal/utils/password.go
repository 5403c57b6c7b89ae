package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher abstracts the credential hashing algorithm so the account store
// contract does not depend on a specific scheme.
type Hasher interface {
	Hash(raw string) (string, error)
	Compare(hash, raw string) bool
}

// BcryptHasher implements Hasher using bcrypt at the default cost.
type BcryptHasher struct{}

func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash hashes a plaintext password using bcrypt.
func (BcryptHasher) Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	return string(hash), err
}

// Compare compares a plaintext password with a bcrypt hash.
func (BcryptHasher) Compare(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
