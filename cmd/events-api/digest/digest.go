// Package digest abstracts the one-way password transformation so the
// credential contract stays stable while the hashing scheme can change.
package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Digest hashes passwords for storage and verifies login attempts against
// the stored value.
type Digest interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

// SHA256 is the historical scheme: a bare deterministic hex digest with no
// salt and no work factor. Kept as the default so already-stored
// credentials keep verifying.
type SHA256 struct{}

func (SHA256) Hash(plain string) (string, error) {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:]), nil
}

func (d SHA256) Verify(stored, plain string) bool {
	computed, _ := d.Hash(plain)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(computed)) == 1
}

// Bcrypt is the salted, cost-tunable scheme for fresh deployments.
type Bcrypt struct {
	Cost int
}

func (d Bcrypt) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), d.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (Bcrypt) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// ForScheme returns the implementation for a configured scheme name.
func ForScheme(scheme string, bcryptCost int) (Digest, error) {
	switch scheme {
	case "", "sha256":
		return SHA256{}, nil
	case "bcrypt":
		return Bcrypt{Cost: bcryptCost}, nil
	}
	return nil, fmt.Errorf("unknown digest scheme %q", scheme)
}
