// Package password provides hashing and verification of the per-item secrets
// that gate post and comment mutation.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher abstracts the hashing algorithm so the cost factor or scheme can
// change without touching handler or service logic.
type Hasher interface {
	// Hash generates a salted one-way hash from a plaintext secret.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored encoded hash.
	Verify(plaintext, encoded string) bool
}

// BcryptHasher implements Hasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a BcryptHasher with the given cost. Costs below
// bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify uses bcrypt's constant-time comparison. Any error, including a
// malformed stored hash, reports a mismatch.
func (h *BcryptHasher) Verify(plaintext, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plaintext)) == nil
}
