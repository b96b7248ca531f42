package pwhash

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// extendedFields is the field count of the extended string form: the
// algorithm, four parameter/salt fields, and the hash.  Splitting on "$"
// yields one extra leading empty part.
const extendedFields = 6

// ──────────────────────────────────────────────────────────────────────────────
// Extended dollar-delimited form
// ──────────────────────────────────────────────────────────────────────────────

// FromString parses the extended dollar-delimited representation:
//
//	$<algorithm>$<field>$<field>$<field>$<field>$<base64-hash>
//
// Exactly six dollar-delimited fields are required; any other shape fails
// with [ErrInvalidHashString].  The first field must be one of the three
// known algorithm identifiers, otherwise [ErrInvalidAlgorithm] carries the
// rejected token.  The final field is base64-decoded (unpadded standard
// alphabet) into the hash bytes, failing with [ErrBase64Decode].
//
// The four middle fields are algorithm-defined parameter and salt material.
// They are not validated field by field; instead they are re-joined with
// "$" (leading "$" kept) and stored verbatim as the entity's salt.
// Preserving the whole parameter blob rather than just the salt value is
// deliberate: it lets [Hash.ExtendedString] reproduce the original
// parameter string byte for byte on re-serialization.
func FromString(s string) (*Hash, error) {
	parts := strings.Split(s, "$")
	if len(parts) != extendedFields+1 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected %d $-delimited fields, got %d",
			ErrInvalidHashString, extendedFields, len(parts)-1)
	}
	algo, err := ParseAlgorithm(parts[1])
	if err != nil {
		return nil, err
	}
	digest, err := base64.RawStdEncoding.DecodeString(parts[6])
	if err != nil {
		return nil, fmt.Errorf("%w: hash field: %v", ErrBase64Decode, err)
	}
	salt := "$" + strings.Join(parts[2:6], "$")
	return NewBuilder().Hash(digest).Salt(Salt(salt)).Algorithm(algo).Build()
}

// ExtendedString renders the entity in the six-field extended form, the
// canonical serialization of this package.
//
// When the stored salt already begins with "$" it is a parameter blob
// preserved by [FromString] and is spliced back verbatim, which makes
// parse-then-serialize byte-stable.  Otherwise default parameter fields for
// the entity's algorithm are synthesized and the salt is rendered as
// unpadded base64:
//
//	$argon2i$v=19$m=4096$t=3,p=1$<base64-salt>$<base64-hash>
//	$scrypt$ln=14$r=8$p=1$<base64-salt>$<base64-hash>
//	$bcrypt$v=2b$c=12$salt=embedded$<base64-salt>$<base64-hash>
func (h *Hash) ExtendedString() string {
	encodedHash := base64.RawStdEncoding.EncodeToString(h.hash)
	if bytes.HasPrefix(h.salt, []byte{'$'}) {
		return "$" + h.algorithm.String() + string(h.salt) + "$" + encodedHash
	}
	return "$" + h.algorithm.String() +
		"$" + defaultParamFields(h.algorithm) +
		"$" + base64.RawStdEncoding.EncodeToString(h.salt) +
		"$" + encodedHash
}

// defaultParamFields returns the three parameter fields encoded for
// entities whose salt is a plain value rather than a preserved blob.  The
// values mirror the fixed provider parameters.
func defaultParamFields(a Algorithm) string {
	switch a {
	case Argon2i:
		return fmt.Sprintf("v=%d$m=%d$t=%d,p=%d",
			argon2.Version, Argon2iMemory, Argon2iTime, Argon2iThreads)
	case Scrypt:
		return fmt.Sprintf("ln=%d$r=%d$p=%d", ScryptLogN, ScryptR, ScryptP)
	case Bcrypt:
		// The real salt lives inside the encoded hash; the fields here only
		// keep the bcrypt form shape-compatible with the other algorithms.
		return fmt.Sprintf("v=2b$c=%d$salt=embedded", DefaultBcryptCost)
	default:
		return ""
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Legacy colon form
// ──────────────────────────────────────────────────────────────────────────────

// StringRepresentation renders the entity in the legacy colon form:
//
//	<salt-as-text>:<hash-as-lowercase-hex>
//
// The salt bytes are interpreted as UTF-8 with invalid sequences replaced
// by U+FFFD.  This form drops the algorithm tag and therefore cannot be
// round-tripped in general.
//
// Deprecated: the colon form is lossy and kept only for producing entries
// readable by old stores.  Use [Hash.ExtendedString].
func (h *Hash) StringRepresentation() string {
	saltText := string(bytes.ToValidUTF8(h.salt, []byte("�")))
	return saltText + ":" + hex.EncodeToString(h.hash)
}

// ──────────────────────────────────────────────────────────────────────────────
// JSON form
// ──────────────────────────────────────────────────────────────────────────────

// hashJSON is the wire shape of an entity: base64 byte fields plus the
// lowercase algorithm identifier.
type hashJSON struct {
	Hash      string    `json:"hash"`
	Salt      string    `json:"salt"`
	Algorithm Algorithm `json:"algorithm"`
}

// MarshalJSON implements [json.Marshaler].  Hash and salt are standard
// base64; the algorithm serializes as its identifier.
func (h *Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(hashJSON{
		Hash:      base64.StdEncoding.EncodeToString(h.hash),
		Salt:      base64.StdEncoding.EncodeToString(h.salt),
		Algorithm: h.algorithm,
	})
}

// UnmarshalJSON implements [json.Unmarshaler].  The decoded fields pass
// through [Builder.Build], so a JSON document can never produce an entity
// that violates the construction invariants.
func (h *Hash) UnmarshalJSON(data []byte) error {
	var wire hashJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	digest, err := base64.StdEncoding.DecodeString(wire.Hash)
	if err != nil {
		return fmt.Errorf("%w: hash field: %v", ErrBase64Decode, err)
	}
	salt, err := base64.StdEncoding.DecodeString(wire.Salt)
	if err != nil {
		return fmt.Errorf("%w: salt field: %v", ErrBase64Decode, err)
	}
	built, err := NewBuilder().Hash(digest).Salt(Salt(salt)).Algorithm(wire.Algorithm).Build()
	if err != nil {
		return err
	}
	*h = *built
	return nil
}
