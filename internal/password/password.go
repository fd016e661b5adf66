// Package password hashes and verifies link passwords with bcrypt.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = 12
	MinLength   = 4
	MaxLength   = 128

	// bcrypt ignores input past 72 bytes
	bcryptMaxBytes = 72
)

const (
	ReasonRequired = "Password is required"
	ReasonTooShort = "Password must be at least 4 characters long"
	ReasonTooLong  = "Password must be less than 128 characters"
)

type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Out of range costs
// fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted hash; two calls with the same input differ.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prepare(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches hash. A mismatch is not an error;
// only a malformed hash is.
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prepare(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

type Strength struct {
	Valid  bool
	Reason string
}

// ValidateStrength applies the product's minimum password rules.
func ValidateStrength(plaintext string) Strength {
	n := utf8.RuneCountInString(plaintext)
	switch {
	case n == 0:
		return Strength{Reason: ReasonRequired}
	case n < MinLength:
		return Strength{Reason: ReasonTooShort}
	case n > MaxLength:
		return Strength{Reason: ReasonTooLong}
	}
	return Strength{Valid: true}
}

func prepare(plaintext string) []byte {
	if len(plaintext) <= bcryptMaxBytes {
		return []byte(plaintext)
	}
	sum := sha256.Sum256([]byte(plaintext))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
