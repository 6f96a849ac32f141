// Package cryptox implements the password hashing used by AuthKeeper.
//
// Hashing must be deterministic: the same password always produces the same
// stored value, because login recomputes the hash and compares it against
// the stored one. Argon2id is therefore run over a fixed application-level
// salt rather than a per-user one.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// appSalt is fixed for the lifetime of the data set. Changing it invalidates
// every stored credential.
var appSalt = []byte("authkeeper.credentials.v1")

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// HashPassword returns the hex-encoded Argon2id digest of the password.
// It is a pure function: identical input yields identical output, and it
// accepts any string including the empty one. Rejecting empty passwords is
// the caller's responsibility.
func HashPassword(password string) string {
	digest := argon2.IDKey([]byte(password), appSalt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(digest)
}

// VerifyPassword recomputes the hash of the candidate password and compares
// it with the stored hash in constant time.
func VerifyPassword(password string, storedHash string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
