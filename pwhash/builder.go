package pwhash

import (
	"fmt"
	"strings"
)

// Builder assembles a [Hash] from precomputed fields.  All three fields are
// optional until [Builder.Build], which validates completeness and yields an
// immutable entity.  The three construction strategies (generic, per
// algorithm, and parsing) all funnel through here so the entity invariants
// are checked in exactly one place.
//
// The zero value is not useful; start with [NewBuilder].  Setters return the
// receiver for chaining:
//
//	h, err := pwhash.NewBuilder().
//	    Hash(digest).
//	    Salt(salt).
//	    Algorithm(pwhash.Scrypt).
//	    Build()
type Builder struct {
	hash      []byte
	salt      Salt
	algorithm Algorithm

	hasHash      bool
	hasSalt      bool
	hasAlgorithm bool
}

// NewBuilder returns a Builder with no fields set.
func NewBuilder() *Builder {
	return &Builder{}
}

// Hash stages the derived hash bytes.
func (b *Builder) Hash(hash []byte) *Builder {
	b.hash = hash
	b.hasHash = true
	return b
}

// Salt stages the salt.  An empty (or nil) salt counts as set; bcrypt
// entities legitimately carry one.
func (b *Builder) Salt(salt Salt) *Builder {
	b.salt = salt
	b.hasSalt = true
	return b
}

// Algorithm stages the algorithm tag.
func (b *Builder) Algorithm(algorithm Algorithm) *Builder {
	b.algorithm = algorithm
	b.hasAlgorithm = true
	return b
}

// Build validates the staged fields and returns the assembled entity.
//
// It fails with [ErrMissingFields] naming the absent fields when any of the
// three has not been set, or when the hash bytes are empty (an entity never
// holds an empty hash).  An algorithm value outside the closed set fails
// with [ErrInvalidAlgorithm].  The staged byte slices are copied, so the
// entity does not alias the builder's inputs.
func (b *Builder) Build() (*Hash, error) {
	var missing []string
	if !b.hasHash {
		missing = append(missing, "hash")
	}
	if !b.hasSalt {
		missing = append(missing, "salt")
	}
	if !b.hasAlgorithm {
		missing = append(missing, "algorithm")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	if len(b.hash) == 0 {
		return nil, fmt.Errorf("%w: hash must not be empty", ErrMissingFields)
	}
	if !b.algorithm.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, b.algorithm.String())
	}
	return &Hash{
		hash:      append([]byte(nil), b.hash...),
		salt:      append(Salt(nil), b.salt...),
		algorithm: b.algorithm,
	}, nil
}
