package pwhash

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Salt lengths per algorithm, chosen to match the textual formats the
// generator emits: 16 raw characters for Argon2i, base64 of 16 random bytes
// for bcrypt (24 characters), base64 of 32 random bytes for scrypt
// (44 characters).
const (
	Argon2iSaltChars = 16
	BcryptSaltBytes  = 16
	ScryptSaltBytes  = 32
)

// saltAlphabet is the character set for raw-text salts.
const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSalt returns a fresh textual salt of the length appropriate for
// the algorithm named by identifier, drawing entropy from crypto/rand.
// Each call draws fresh entropy; it is safe to call from any number of
// goroutines.
//
// The format is advisory, not a binding wire guarantee: bcrypt in
// particular ignores externally supplied salt.
func GenerateSalt(identifier string) (string, error) {
	return GenerateSaltFrom(rand.Reader, identifier)
}

// GenerateSaltFrom is [GenerateSalt] with an explicit entropy source, so
// tests can seed salt generation deterministically.
func GenerateSaltFrom(r io.Reader, identifier string) (string, error) {
	algo, err := ParseAlgorithm(identifier)
	if err != nil {
		return "", err
	}
	switch algo {
	case Argon2i:
		return randomText(r, Argon2iSaltChars)
	case Bcrypt:
		return randomBase64(r, BcryptSaltBytes)
	case Scrypt:
		return randomBase64(r, ScryptSaltBytes)
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, identifier)
	}
}

// randomBase64 reads n bytes from r and returns them as padded standard
// base64.
func randomBase64(r io.Reader, n int) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", fmt.Errorf("pwhash: failed to read salt entropy: %w", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// randomText returns n characters drawn uniformly from saltAlphabet.
// Rejection sampling keeps the distribution unbiased.
func randomText(r io.Reader, n int) (string, error) {
	// Largest multiple of len(saltAlphabet) that fits in a byte.
	const limit = byte(256 / len(saltAlphabet) * len(saltAlphabet))

	out := make([]byte, 0, n)
	var buf [1]byte
	for len(out) < n {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return "", fmt.Errorf("pwhash: failed to read salt entropy: %w", err)
		}
		if buf[0] >= limit {
			continue
		}
		out = append(out, saltAlphabet[int(buf[0])%len(saltAlphabet)])
	}
	return string(out), nil
}
