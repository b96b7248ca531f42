package pwhash_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/hasbyte1/go-password-utils/pwhash"
)

func TestParseAlgorithm_KnownIdentifiers(t *testing.T) {
	cases := []struct {
		identifier string
		want       pwhash.Algorithm
	}{
		{"argon2i", pwhash.Argon2i},
		{"bcrypt", pwhash.Bcrypt},
		{"scrypt", pwhash.Scrypt},
	}
	for _, tc := range cases {
		t.Run(tc.identifier, func(t *testing.T) {
			got, err := pwhash.ParseAlgorithm(tc.identifier)
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q): %v", tc.identifier, err)
			}
			if got != tc.want {
				t.Errorf("ParseAlgorithm(%q) = %v, want %v", tc.identifier, got, tc.want)
			}
		})
	}
}

func TestParseAlgorithm_Rejections(t *testing.T) {
	// Matching is exact and case-sensitive.
	for _, identifier := range []string{"", "md5", "sha256", "Argon2i", "BCRYPT", "argon2id", " bcrypt"} {
		t.Run(identifier, func(t *testing.T) {
			_, err := pwhash.ParseAlgorithm(identifier)
			if !errors.Is(err, pwhash.ErrInvalidAlgorithm) {
				t.Errorf("ParseAlgorithm(%q): expected ErrInvalidAlgorithm, got %v", identifier, err)
			}
		})
	}
}

func TestAlgorithm_StringRoundTrip(t *testing.T) {
	for _, a := range []pwhash.Algorithm{pwhash.Argon2i, pwhash.Bcrypt, pwhash.Scrypt} {
		back, err := pwhash.ParseAlgorithm(a.String())
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", a.String(), err)
		}
		if back != a {
			t.Errorf("round trip of %v came back as %v", a, back)
		}
	}
}

func TestAlgorithm_Ordering(t *testing.T) {
	// The tag is totally ordered so entities can live in sorted containers.
	if !(pwhash.Argon2i < pwhash.Bcrypt && pwhash.Bcrypt < pwhash.Scrypt) {
		t.Error("expected Argon2i < Bcrypt < Scrypt")
	}
}

func TestAlgorithm_UsableAsMapKey(t *testing.T) {
	m := map[pwhash.Algorithm]string{
		pwhash.Argon2i: "a",
		pwhash.Bcrypt:  "b",
		pwhash.Scrypt:  "c",
	}
	if len(m) != 3 {
		t.Errorf("expected 3 distinct keys, got %d", len(m))
	}
}

func TestAlgorithm_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(pwhash.Scrypt)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"scrypt"` {
		t.Errorf("marshalled as %s, want %q", data, `"scrypt"`)
	}

	var a pwhash.Algorithm
	if err := json.Unmarshal([]byte(`"bcrypt"`), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a != pwhash.Bcrypt {
		t.Errorf("unmarshalled as %v, want Bcrypt", a)
	}
}

func TestAlgorithm_UnmarshalUnknown(t *testing.T) {
	var a pwhash.Algorithm
	err := json.Unmarshal([]byte(`"md5"`), &a)
	if !errors.Is(err, pwhash.ErrInvalidAlgorithm) {
		t.Errorf("expected ErrInvalidAlgorithm, got %v", err)
	}
}
