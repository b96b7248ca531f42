package pwhash

import (
	"crypto/subtle"
	"fmt"
	"unicode/utf8"
)

// Verify checks a candidate password against the stored hash.
//
// Verification is a pure query: it never mutates the entity, and a
// mismatched password is a normal (false, nil) result, not an error.  Only
// infrastructural failures are errors: a salt that is not valid UTF-8 wraps
// [ErrSaltDecode], and a structurally unusable stored hash wraps
// [ErrVerificationFailed].
//
// For Argon2i and scrypt the hash is recomputed from the candidate and the
// stored salt, then compared in constant time.  For bcrypt the stored bytes
// are the provider's self-describing encoded string (salt included), so
// equality checking is delegated to [BcryptProvider.VerifyPassword] and the
// entity's salt field is not read.
func (h *Hash) Verify(password string) (bool, error) {
	if !utf8.Valid(h.salt) {
		return false, fmt.Errorf("%w: %d salt bytes", ErrSaltDecode, len(h.salt))
	}
	salt := string(h.salt)

	var (
		match bool
		err   error
	)
	switch h.algorithm {
	case Argon2i:
		match, err = recomputeAndCompare(Argon2iProvider{}, password, salt, h.hash)
	case Bcrypt:
		match, err = BcryptProvider{}.VerifyPassword(password, h.hash)
	case Scrypt:
		match, err = recomputeAndCompare(ScryptProvider{}, password, salt, h.hash)
	default:
		// Unreachable through this package's constructors (the algorithm
		// set is validated at build time).
		return false, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, h.algorithm.String())
	}
	if err != nil {
		return false, err
	}

	logger.Debug().
		Stringer("algorithm", h.algorithm).
		Bool("match", match).
		Msg("password verified")
	return match, nil
}

// recomputeAndCompare re-derives the hash for the candidate password and
// compares it against the stored bytes in constant time.
func recomputeAndCompare(p Provider, password, salt string, stored []byte) (bool, error) {
	recomputed, err := p.HashPassword(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(recomputed, stored) == 1, nil
}
