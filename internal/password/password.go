// Package password implements salted one-way password hashing with
// argon2id. Digests are self-describing: the salt and cost parameters
// are embedded, so verification needs no external state.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen = 16
	keyLen  = 32
	memory  = 64 * 1024
	passes  = 1
	threads = 4
)

// Hash produces a salted argon2id digest of the plaintext. A fresh
// random salt is drawn on every call, so the same input never yields
// the same digest twice.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(plaintext), salt, passes, memory, threads, keyLen)

	// Format: $argon2id$v=19$m=65536,t=1,p=4$BASE64_SALT$BASE64_HASH
	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, passes, threads, encodedSalt, encodedHash), nil
}

// Verify recomputes the digest from the plaintext using the parameters
// and salt embedded in the stored digest and compares in constant time.
// Malformed digests never error; they simply verify false.
func Verify(plaintext, digest string) bool {
	sections := strings.Split(digest, "$")
	// Expected: ["", "argon2id", "v=19", "m=65536,t=1,p=4", salt, hash]
	if len(sections) != 6 || sections[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(sections[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var m, t, p uint32
	if _, err := fmt.Sscanf(sections[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false
	}
	if m == 0 || t == 0 || p == 0 || p > 255 {
		return false
	}

	// Strict decoding rejects non-canonical trailing bits, so any
	// single-character corruption of salt or hash fails verification.
	salt, err := base64.RawStdEncoding.Strict().DecodeString(sections[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.Strict().DecodeString(sections[5])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(plaintext), salt, t, m, uint8(p), uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
