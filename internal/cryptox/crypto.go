// Package cryptox holds the password digest used for the credential record.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DigestSize is the length of a hex-encoded digest in bytes.
const DigestSize = sha256.Size * 2

// HexDigest returns the lowercase hexadecimal SHA-256 digest of password.
//
// The result is what gets stored on disk, so the encoding must stay stable:
// 64 ASCII characters, no prefix, no trailing newline.
func HexDigest(password []byte) []byte {
	sum := sha256.Sum256(password)
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}

// Match reports whether stored is byte-for-byte equal to the digest of
// password. The comparison runs in constant time.
func Match(stored, password []byte) bool {
	return subtle.ConstantTimeCompare(stored, HexDigest(password)) == 1
}
