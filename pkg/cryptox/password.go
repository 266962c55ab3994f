// Package cryptox holds the password encoding and opaque code generation
// primitives used by the auth subsystem.
package cryptox

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. These are fixed: changing them invalidates every
// stored password.
const (
	iterations = 1000
	keyLength  = 64
)

// PasswordEncoder derives a deterministic PBKDF2-SHA512 digest from a
// plaintext password using a shared secret as the salt.
//
// Because the secret is the only salt, the transform is deterministic:
// two accounts with the same password store the same digest. This mirrors
// the stored-value format the platform already has in production; adding a
// per-user salt would be a hardening opportunity but breaks compatibility
// with existing records.
type PasswordEncoder struct {
	secret []byte
}

func NewPasswordEncoder(secret string) *PasswordEncoder {
	return &PasswordEncoder{secret: []byte(secret)}
}

// Encode returns the hex-encoded PBKDF2-SHA512 digest of plain.
func (e *PasswordEncoder) Encode(plain string) string {
	key := pbkdf2.Key([]byte(plain), e.secret, iterations, keyLength, sha512.New)
	return hex.EncodeToString(key)
}

// Matches re-encodes plain and compares it against encoded in constant time.
func (e *PasswordEncoder) Matches(plain, encoded string) bool {
	computed := e.Encode(plain)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(encoded)) == 1
}
