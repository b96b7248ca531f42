package pwhash

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Fixed scrypt parameters: a balanced preset between security and latency.
// Like the Argon2i parameters, they are part of the wire contract.
const (
	// ScryptLogN is log2 of the CPU/memory cost parameter.
	ScryptLogN = 14

	// ScryptN is the CPU/memory cost parameter (2^14 = 16384).
	ScryptN = 1 << ScryptLogN

	// ScryptR is the block size parameter.
	ScryptR = 8

	// ScryptP is the parallelization parameter.
	ScryptP = 1

	// ScryptKeyLen is the derived key length in bytes.
	ScryptKeyLen = 64
)

// ScryptProvider derives hashes with the scrypt algorithm.
//
// Scrypt is both memory-hard and work-factored.  The derivation is
// deterministic for a given (password, salt, parameters) triple, and the
// parameters are fixed to the preset above, so the caller owns salt
// generation (see [GenerateSalt]).
//
// ScryptProvider is stateless and safe for concurrent use.
type ScryptProvider struct{}

// HashPassword derives a 64-byte scrypt key from password and salt using
// the fixed preset.  Parameter rejection by the primitive (impossible with
// the compiled-in preset, but kept on the error path) wraps
// [ErrProviderFailure].
func (ScryptProvider) HashPassword(password, salt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), ScryptN, ScryptR, ScryptP, ScryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: scrypt: %v", ErrProviderFailure, err)
	}
	return key, nil
}
