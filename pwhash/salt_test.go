package pwhash_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/hasbyte1/go-password-utils/pwhash"
)

func TestGenerateSalt_Lengths(t *testing.T) {
	cases := []struct {
		identifier string
		wantLen    int
	}{
		{"argon2i", 16}, // 16 raw characters
		{"bcrypt", 24},  // base64 of 16 random bytes
		{"scrypt", 44},  // base64 of 32 random bytes
	}
	for _, tc := range cases {
		t.Run(tc.identifier, func(t *testing.T) {
			salt, err := pwhash.GenerateSalt(tc.identifier)
			if err != nil {
				t.Fatalf("GenerateSalt: %v", err)
			}
			if len(salt) != tc.wantLen {
				t.Errorf("len = %d, want %d (salt %q)", len(salt), tc.wantLen, salt)
			}
		})
	}
}

func TestGenerateSalt_InvalidAlgorithm(t *testing.T) {
	_, err := pwhash.GenerateSalt("md5")
	if !errors.Is(err, pwhash.ErrInvalidAlgorithm) {
		t.Errorf("expected ErrInvalidAlgorithm, got %v", err)
	}
}

func TestGenerateSalt_FreshEntropyPerCall(t *testing.T) {
	a, _ := pwhash.GenerateSalt("scrypt")
	b, _ := pwhash.GenerateSalt("scrypt")
	if a == b {
		t.Error("two salt generations produced identical output")
	}
}

func TestGenerateSaltFrom_DeterministicUnderSeeding(t *testing.T) {
	// An explicit entropy source makes salt generation reproducible in
	// tests; identical seeds must yield identical salts.
	for _, identifier := range []string{"argon2i", "bcrypt", "scrypt"} {
		t.Run(identifier, func(t *testing.T) {
			first, err := pwhash.GenerateSaltFrom(rand.New(rand.NewSource(42)), identifier)
			if err != nil {
				t.Fatalf("GenerateSaltFrom: %v", err)
			}
			second, err := pwhash.GenerateSaltFrom(rand.New(rand.NewSource(42)), identifier)
			if err != nil {
				t.Fatalf("GenerateSaltFrom: %v", err)
			}
			if first != second {
				t.Errorf("same seed produced %q and %q", first, second)
			}
		})
	}
}

func TestGenerateSalt_Argon2iAlphabet(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	salt, err := pwhash.GenerateSalt("argon2i")
	if err != nil {
		t.Fatalf("GenerateSalt: %v", err)
	}
	for _, c := range salt {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("salt %q contains character %q outside the alphabet", salt, c)
		}
	}
}
