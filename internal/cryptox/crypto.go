// Package cryptox implements the password verifier scheme used by the
// account store: a memory-hard KDF over the plaintext password and a
// per-user random salt, hex encoded for storage in a TEXT column.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing these invalidates every stored hash.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// HashPassword derives a deterministic, fixed-length verifier from the
// plaintext password and salt. The salt must be freshly generated per
// registration and never reused.
func HashPassword(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the verifier for the candidate password and
// compares it to the stored hash in constant time.
func VerifyPassword(password, salt, hash string) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
