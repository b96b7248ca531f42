package pwhash

// Provider is the uniform capability implemented once per supported
// algorithm: derive hash bytes from a password and a salt.
//
// Providers are stateless aside from their fixed parameters and are safe for
// concurrent use.  Argon2i and scrypt are deterministic for a given
// (password, salt) pair; bcrypt ignores the salt argument and embeds its own
// random salt in the output, so two calls with the same inputs produce
// different bytes.
type Provider interface {
	// HashPassword derives the hash bytes for password combined with salt.
	// The output length is fixed by the provider's parameters.  Failures of
	// the underlying primitive are surfaced as errors wrapping
	// [ErrProviderFailure]; providers never panic on bad input.
	HashPassword(password, salt string) ([]byte, error)
}

// providers is the static dispatch table backing the algorithm selector.
// The set is closed, so registration machinery would be overkill; the table
// is total over [Algorithm].
var providers = map[Algorithm]Provider{
	Argon2i: Argon2iProvider{},
	Bcrypt:  BcryptProvider{},
	Scrypt:  ScryptProvider{},
}

// providerFor returns the provider for a member of the closed set.
func providerFor(a Algorithm) Provider {
	return providers[a]
}
