package pwhash

import "github.com/rs/zerolog"

// logger is the package diagnostic channel.  Disabled by default: the
// package emits nothing unless a caller opts in via [SetLogger].
var logger = zerolog.Nop()

// SetLogger installs an opt-in diagnostic logger for hashing and
// verification events.
//
// Events are redacted by construction: they carry algorithm names, byte
// lengths, and match outcomes only.  Passwords, salts, and derived hash
// bytes are never logged, on any level.
//
// SetLogger is intended to be called once during program startup, before
// the package is used from multiple goroutines.
func SetLogger(l zerolog.Logger) {
	logger = l
}
