package pwhash

import "fmt"

// Algorithm identifies one of the supported key-derivation algorithms.
//
// The set is closed: exactly [Argon2i], [Bcrypt], and [Scrypt].  Values are
// immutable, copyable, totally ordered, and usable as map keys.  An
// Algorithm converts losslessly to and from its lowercase identifier via
// [Algorithm.String] and [ParseAlgorithm].
type Algorithm int

const (
	// Argon2i selects the Argon2i memory-hard derivation.
	Argon2i Algorithm = iota
	// Bcrypt selects the bcrypt work-factor derivation.
	Bcrypt
	// Scrypt selects the scrypt memory-hard, work-factor derivation.
	Scrypt
)

// Wire-level identifiers.  Exactly these lowercase strings are accepted;
// anything else is an invalid-algorithm error.
const (
	identifierArgon2i = "argon2i"
	identifierBcrypt  = "bcrypt"
	identifierScrypt  = "scrypt"
)

// String returns the canonical lowercase identifier for the algorithm.
// The mapping is total over the closed set; an out-of-range value (which
// cannot occur through this package's API) renders as "algorithm(<n>)".
func (a Algorithm) String() string {
	switch a {
	case Argon2i:
		return identifierArgon2i
	case Bcrypt:
		return identifierBcrypt
	case Scrypt:
		return identifierScrypt
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// valid reports whether a is a member of the closed set.
func (a Algorithm) valid() bool {
	return a >= Argon2i && a <= Scrypt
}

// ParseAlgorithm resolves a textual algorithm identifier to its [Algorithm].
// Matching is exact and case-sensitive against "argon2i", "bcrypt", and
// "scrypt"; any other string fails with [ErrInvalidAlgorithm] carrying the
// offending identifier.
func ParseAlgorithm(identifier string) (Algorithm, error) {
	switch identifier {
	case identifierArgon2i:
		return Argon2i, nil
	case identifierBcrypt:
		return Bcrypt, nil
	case identifierScrypt:
		return Scrypt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, identifier)
	}
}

// MarshalText implements encoding.TextMarshaler, rendering the algorithm as
// its lowercase identifier.  This is what makes the tag serialize as
// "argon2i" rather than 0 inside JSON documents and ordered containers.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, a.String())
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
