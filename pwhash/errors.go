package pwhash

import "errors"

// Sentinel errors returned by hashing, parsing, and verification operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := pwhash.New(password, salt, algo)
//	if errors.Is(err, pwhash.ErrPasswordTooShort) {
//	    // reject at the input boundary
//	}
//
// Error strings never contain passwords, salts, or derived hash bytes.
var (
	// ErrInvalidAlgorithm is returned when a textual algorithm identifier is
	// not one of "argon2i", "bcrypt", or "scrypt".  The wrapped message
	// carries the rejected identifier.
	ErrInvalidAlgorithm = errors.New("pwhash: invalid algorithm")

	// ErrPasswordTooShort is returned by the constructors when the plaintext
	// password has fewer than [MinPasswordLen] characters.
	ErrPasswordTooShort = errors.New("pwhash: password too short")

	// ErrInvalidHashString is returned by [FromString] when the input does
	// not have the six dollar-separated segments of the extended form.
	ErrInvalidHashString = errors.New("pwhash: invalid hash string")

	// ErrBase64Decode is returned when the hash segment of an extended
	// string, or a base64 field of the JSON form, cannot be decoded.
	ErrBase64Decode = errors.New("pwhash: base64 decode failed")

	// ErrSaltDecode is returned by [Hash.Verify] when the stored salt bytes
	// are not valid UTF-8 and therefore cannot be fed back to a provider.
	ErrSaltDecode = errors.New("pwhash: salt is not valid UTF-8")

	// ErrProviderFailure is returned when an underlying derivation primitive
	// rejects its inputs (for example an out-of-range scrypt parameter).
	ErrProviderFailure = errors.New("pwhash: provider failure")

	// ErrVerificationFailed is returned by [Hash.Verify] when the stored
	// hash is structurally unusable for verification (for example bcrypt
	// bytes that do not decode to a well-formed encoded hash).  A mismatched
	// password is NOT an error; it is a normal false result.
	ErrVerificationFailed = errors.New("pwhash: verification failed")

	// ErrMissingFields is returned by [Builder.Build] when one or more of
	// the three entity fields has not been supplied, or the hash bytes are
	// empty.
	ErrMissingFields = errors.New("pwhash: missing builder fields")

	// ErrInvalidOption is returned when a tunable parameter falls outside
	// its allowed range (e.g. a bcrypt cost below 4 or above 31).
	ErrInvalidOption = errors.New("pwhash: invalid option value")
)
