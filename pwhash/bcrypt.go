package pwhash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when [BcryptProvider.Cost] is
// zero.  At cost 12, hashing takes roughly 250 ms on a modern server CPU,
// which satisfies the OWASP minimum of 10 with headroom.
const DefaultBcryptCost = 12

// BcryptProvider derives hashes with the bcrypt algorithm.
//
// Bcrypt internally generates a fresh 128-bit random salt on every call and
// embeds it in its self-describing encoded output, so the salt argument to
// HashPassword is ignored and an entity built from this provider carries an
// empty, non-authoritative salt field.
//
// The zero value uses [DefaultBcryptCost] and is safe for concurrent use.
type BcryptProvider struct {
	// Cost is the logarithmic work factor.  Zero means [DefaultBcryptCost].
	// Values outside [bcrypt.MinCost, bcrypt.MaxCost] are rejected with
	// [ErrInvalidOption].
	Cost int
}

// HashPassword hashes password with bcrypt and returns the encoded output
// (e.g. "$2a$12$...") as bytes.  The salt argument is unused; bcrypt
// generates its own.
//
// Bcrypt truncates passwords longer than 72 bytes; longer inputs are
// rejected by the primitive and surface as [ErrProviderFailure].
func (p BcryptProvider) HashPassword(password, _ string) ([]byte, error) {
	cost, err := p.cost()
	if err != nil {
		return nil, err
	}
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("%w: bcrypt: %v", ErrProviderFailure, err)
	}
	return encoded, nil
}

// VerifyPassword checks password against a previously produced encoded
// bcrypt hash.  This is the provider's own verification entry point: the
// salt lives inside encoded, so equality checking must be delegated here
// rather than recomputed from an external salt.
//
// A mismatch is (false, nil); a structurally invalid encoded hash wraps
// [ErrVerificationFailed].
func (p BcryptProvider) VerifyPassword(password string, encoded []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword(encoded, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: bcrypt: %v", ErrVerificationFailed, err)
	}
}

// cost resolves and validates the effective work factor.
func (p BcryptProvider) cost() (int, error) {
	if p.Cost == 0 {
		return DefaultBcryptCost, nil
	}
	if p.Cost < bcrypt.MinCost || p.Cost > bcrypt.MaxCost {
		return 0, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, p.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return p.Cost, nil
}
