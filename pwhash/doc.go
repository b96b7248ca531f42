// Package pwhash provides a password-hashing abstraction over three
// selectable key-derivation algorithms: Argon2i, bcrypt, and scrypt.
//
// # Architecture
//
// The central entity is [Hash]: the triple of derived hash bytes, salt, and
// the [Algorithm] that produced them.  Entities are created eagerly from a
// password ([New] and the per-algorithm constructors), assembled from
// precomputed fields through a validated [Builder], parsed from the extended
// dollar-delimited string form ([FromString]), or rehydrated from externally
// obtained raw bytes ([FromHash]).
//
// The actual derivation is performed by a [Provider], implemented once per
// algorithm on top of golang.org/x/crypto.  Callers select a provider through
// [ParseAlgorithm] rather than depending on concrete types, so the three
// algorithms stay interchangeable behind one capability.
//
// # Quick start
//
//	h, err := pwhash.New("my-secret-password", "somesalt", "argon2i")
//	if err != nil { log.Fatal(err) }
//
//	stored := h.ExtendedString() // $argon2i$v=19$m=4096$t=3,p=1$...$...
//
//	ok, _ := h.Verify("my-secret-password") // true
//
// # Salt handling
//
// Argon2i and scrypt are deterministic for a given (password, salt) pair, so
// the salt stored in the entity must be supplied back unchanged at
// verification time.  Bcrypt generates and embeds its own salt inside its
// encoded output; the entity's salt field is conventionally empty for bcrypt
// and is never read during bcrypt verification.
//
// # String formats
//
// The extended form is the canonical serialization:
//
//	$<algorithm>$<field>$<field>$<field>$<field>$<base64-hash>
//
// Six dollar-delimited fields.  The four middle fields are preserved
// verbatim as an opaque parameter blob so re-serialization reproduces the
// original string byte for byte.  The legacy colon form
// ("<salt>:<hex-hash>") drops the algorithm tag and cannot round-trip; it is
// kept for interoperability with old stores only.
//
// # Diagnostics
//
// The package emits no output by default.  [SetLogger] installs an opt-in
// zerolog channel whose events are redacted: they carry algorithm names,
// byte lengths and outcomes, never passwords, salts, or derived bytes.
//
// # Concurrency
//
// All operations are synchronous and CPU-bound with no cancellation point.
// Entities are not safe for concurrent mutation; they offer no implicit
// sharing, so each entity should stay owned by one goroutine.  For hashing
// under concurrent load, see the pool package.
package pwhash
