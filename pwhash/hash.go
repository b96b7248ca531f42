package pwhash

import (
	"bytes"
	"cmp"
	"crypto/subtle"
	"fmt"
)

// MinPasswordLen is the minimum accepted plaintext password length in bytes.
const MinPasswordLen = 8

// Salt is an opaque byte sequence combined with a password before hashing.
//
// For Argon2i and scrypt the salt is meaningful and must be passed back
// unchanged at verification time.  For bcrypt it is conventionally empty:
// the primitive embeds its own salt inside its encoded output, so the
// entity's salt field is not authoritative for that algorithm.
type Salt []byte

// Hash is the core entity: derived hash bytes, the salt they were derived
// with, and the algorithm tag.  A successfully constructed entity always
// holds non-empty hash bytes and a member of the closed algorithm set.
//
// Entities are immutable except through the explicit mutators [Hash.SetHash],
// [Hash.SetSalt], and [Hash.SetPassword].  They offer no implicit sharing:
// each entity is exclusively owned by its caller, and accessor methods
// return defensive copies of byte fields.
type Hash struct {
	hash      []byte
	salt      Salt
	algorithm Algorithm
}

// ──────────────────────────────────────────────────────────────────────────────
// Construction
// ──────────────────────────────────────────────────────────────────────────────

// New hashes password under the algorithm named by identifier and returns
// the assembled entity.
//
// Passwords shorter than [MinPasswordLen] bytes fail with
// [ErrPasswordTooShort].  An unknown identifier fails with
// [ErrInvalidAlgorithm].  Hashing is performed eagerly; for Argon2i and
// scrypt the salt is stored verbatim, while for bcrypt the stored salt is
// whatever the caller supplied but is never read back (the encoded output
// carries its own).
func New(password, salt, identifier string) (*Hash, error) {
	if err := checkPasswordLength(password); err != nil {
		return nil, err
	}
	algo, err := ParseAlgorithm(identifier)
	if err != nil {
		return nil, err
	}
	digest, err := providerFor(algo).HashPassword(password, salt)
	if err != nil {
		return nil, err
	}
	h, err := NewBuilder().Hash(digest).Salt(Salt(salt)).Algorithm(algo).Build()
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Stringer("algorithm", algo).
		Int("hash_len", h.Length()).
		Msg("hash created")
	return h, nil
}

// NewArgon2i hashes password with Argon2i using the supplied salt.
func NewArgon2i(password, salt string) (*Hash, error) {
	if err := checkPasswordLength(password); err != nil {
		return nil, err
	}
	digest, err := Argon2iProvider{}.HashPassword(password, salt)
	if err != nil {
		return nil, err
	}
	return NewBuilder().Hash(digest).Salt(Salt(salt)).Algorithm(Argon2i).Build()
}

// NewBcrypt hashes password with bcrypt at the given work factor (zero
// selects [DefaultBcryptCost]).  The entity's salt is empty: bcrypt embeds
// its own salt in the encoded output.
func NewBcrypt(password string, cost int) (*Hash, error) {
	if err := checkPasswordLength(password); err != nil {
		return nil, err
	}
	digest, err := BcryptProvider{Cost: cost}.HashPassword(password, "")
	if err != nil {
		return nil, err
	}
	return NewBuilder().Hash(digest).Salt(Salt{}).Algorithm(Bcrypt).Build()
}

// NewScrypt hashes password with scrypt using the supplied salt and the
// package's fixed cost preset.
func NewScrypt(password, salt string) (*Hash, error) {
	if err := checkPasswordLength(password); err != nil {
		return nil, err
	}
	digest, err := ScryptProvider{}.HashPassword(password, salt)
	if err != nil {
		return nil, err
	}
	return NewBuilder().Hash(digest).Salt(Salt(salt)).Algorithm(Scrypt).Build()
}

// FromHash wraps externally obtained raw hash bytes under a known algorithm.
// The salt is left empty; use this to rehydrate a hash whose salt is tracked
// elsewhere.
func FromHash(raw []byte, identifier string) (*Hash, error) {
	algo, err := ParseAlgorithm(identifier)
	if err != nil {
		return nil, err
	}
	return NewBuilder().Hash(raw).Salt(Salt{}).Algorithm(algo).Build()
}

func checkPasswordLength(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("%w: need at least %d characters, got %d",
			ErrPasswordTooShort, MinPasswordLen, len(password))
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Accessors
// ──────────────────────────────────────────────────────────────────────────────

// Bytes returns a copy of the derived hash bytes.
func (h *Hash) Bytes() []byte {
	return append([]byte(nil), h.hash...)
}

// Salt returns a copy of the stored salt.
func (h *Hash) Salt() Salt {
	return append(Salt(nil), h.salt...)
}

// Algorithm returns the algorithm tag.
func (h *Hash) Algorithm() Algorithm {
	return h.algorithm
}

// Length returns the length of the derived hash in bytes.
func (h *Hash) Length() int {
	return len(h.hash)
}

// String implements [fmt.Stringer].  The output is redacted: it names the
// algorithm and field lengths but never renders hash, salt, or password
// material, so an entity is safe to pass to %v in logs.
func (h *Hash) String() string {
	return fmt.Sprintf("pwhash.Hash{algorithm: %s, hash: %d bytes, salt: %d bytes}",
		h.algorithm, len(h.hash), len(h.salt))
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutators
// ──────────────────────────────────────────────────────────────────────────────

// SetHash replaces the stored hash bytes.  The algorithm tag is unchanged.
func (h *Hash) SetHash(hash []byte) {
	h.hash = append([]byte(nil), hash...)
}

// SetSalt replaces the stored salt.  The algorithm tag is unchanged.
func (h *Hash) SetSalt(salt Salt) {
	h.salt = append(Salt(nil), salt...)
}

// SetPassword recomputes the stored hash in place from a new password,
// dispatching through the same provider path as [New].  Only the hash bytes
// are mutated; the stored salt is untouched, and the algorithm tag changes
// only when identifier names a different algorithm than the current one.
func (h *Hash) SetPassword(password, salt, identifier string) error {
	if err := checkPasswordLength(password); err != nil {
		return err
	}
	algo, err := ParseAlgorithm(identifier)
	if err != nil {
		return err
	}
	digest, err := providerFor(algo).HashPassword(password, salt)
	if err != nil {
		return err
	}
	h.hash = digest
	h.algorithm = algo
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Equality and ordering
// ──────────────────────────────────────────────────────────────────────────────

// Equal reports whether h and other hold the same algorithm, salt, and hash
// bytes.  The hash bytes are compared in constant time.
func (h *Hash) Equal(other *Hash) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.algorithm == other.algorithm &&
		bytes.Equal(h.salt, other.salt) &&
		subtle.ConstantTimeCompare(h.hash, other.hash) == 1
}

// Compare orders two entities by algorithm, then salt, then hash bytes, for
// use in sorted containers.  Ordering is not a security-sensitive operation,
// so plain lexicographic comparison is used throughout.
func (h *Hash) Compare(other *Hash) int {
	if c := cmp.Compare(h.algorithm, other.algorithm); c != 0 {
		return c
	}
	if c := bytes.Compare(h.salt, other.salt); c != 0 {
		return c
	}
	return bytes.Compare(h.hash, other.hash)
}
